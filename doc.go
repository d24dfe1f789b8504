// Package linmath provides small fixed-size matrix and vector math for
// 2D/3D graphics and geometry.
//
// # Overview
//
// linmath implements dense 2x2, 3x3, and 4x4 float64 matrices stored
// column-major, built from the fixed-size vector types Vec2, Vec3, and
// Vec4. It covers construction, transpose, determinant, inverse,
// arithmetic, and vector transformation for transforms and rotations.
// It is not a general numerical linear-algebra package: there are no
// arbitrary-size matrices and no decompositions beyond the direct
// cofactor inverse.
//
// # Quick Start
//
//	import "github.com/gogpu/linmath"
//
//	// Rotate a point 90 degrees counterclockwise.
//	rot := linmath.Mat2FromAngle(math.Pi / 2)
//	p := rot.MulVec2(linmath.V2(1, 0))
//
//	// Invert a 3x3 transform; Inverse reports singular matrices.
//	inv, err := m.Inverse()
//	if errors.Is(err, linmath.ErrSingular) {
//	    // m has determinant exactly zero
//	}
//
// # Values, Not References
//
// Every type is an immutable plain value: operations never mutate their
// receiver and always return a fresh value. Copying is cheap and there is
// no shared state, so values may be used freely from concurrent
// goroutines without coordination.
//
// # Column-Major Layout
//
// A matrix is an ordered tuple of column vectors: element (row i, col j)
// is column j's component i. Scalar constructors such as NewMat3 take
// their arguments in column-major order; the per-constructor docs spell
// out the layout.
//
// # Errors
//
// Only Inverse and Div can fail, and only with ErrSingular when the
// determinant is exactly zero. Everything else is a total function.
package linmath
