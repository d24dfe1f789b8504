package linmath

import "errors"

// ErrSingular is returned by Inverse and Div when the matrix being inverted
// has a determinant of exactly 0.0. The check uses exact IEEE-754 equality,
// no epsilon tolerance: a near-singular matrix with a tiny nonzero
// determinant inverts successfully and may produce numerically large or
// imprecise results. Callers that need robustness against near-singular
// input must apply their own tolerance check before inverting.
//
// Match with errors.Is.
var ErrSingular = errors.New("linmath: singular matrix")
