package linmath

import "math"

// Mat2 is a 2x2 column-major matrix. XAxis is column 0 and YAxis is
// column 1:
//
//	| XAxis.X  YAxis.X |
//	| XAxis.Y  YAxis.Y |
type Mat2 struct {
	XAxis, YAxis Vec2
}

// NewMat2 creates a Mat2 from scalars in column-major order:
// (m00, m01) is column 0 and (m10, m11) is column 1.
func NewMat2(m00, m01, m10, m11 float64) Mat2 {
	return Mat2{
		XAxis: Vec2{X: m00, Y: m01},
		YAxis: Vec2{X: m10, Y: m11},
	}
}

// Mat2FromCols creates a Mat2 from two column vectors.
func Mat2FromCols(x, y Vec2) Mat2 {
	return Mat2{XAxis: x, YAxis: y}
}

// Mat2FromDiagonal creates a Mat2 with d on the diagonal and 0 elsewhere.
func Mat2FromDiagonal(d Vec2) Mat2 {
	return NewMat2(
		d.X, 0,
		0, d.Y,
	)
}

// Mat2FromAngle creates a rotation matrix for angle radians
// (counterclockwise).
func Mat2FromAngle(angle float64) Mat2 {
	sin, cos := math.Sincos(angle)
	return NewMat2(
		cos, sin,
		-sin, cos,
	)
}

// Mat2FromScaleAngle creates a rotation matrix for angle radians whose
// columns are scaled by scale.X and scale.Y respectively. Equivalent to
// Mat2FromAngle(angle).ScaleDiagonal(scale) without the extra multiply.
func Mat2FromScaleAngle(scale Vec2, angle float64) Mat2 {
	sin, cos := math.Sincos(angle)
	return NewMat2(
		cos*scale.X, sin*scale.X,
		-sin*scale.Y, cos*scale.Y,
	)
}

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity() Mat2 {
	return NewMat2(
		1, 0,
		0, 1,
	)
}

// Mat2Zero returns the 2x2 zero matrix.
func Mat2Zero() Mat2 {
	return Mat2{}
}

// Col returns column i. It panics if i is not 0 or 1.
func (m Mat2) Col(i int) Vec2 {
	switch i {
	case 0:
		return m.XAxis
	case 1:
		return m.YAxis
	}
	panic("linmath: Mat2 column index out of range")
}

// Row returns row i. It panics if i is not 0 or 1.
func (m Mat2) Row(i int) Vec2 {
	switch i {
	case 0:
		return Vec2{X: m.XAxis.X, Y: m.YAxis.X}
	case 1:
		return Vec2{X: m.XAxis.Y, Y: m.YAxis.Y}
	}
	panic("linmath: Mat2 row index out of range")
}

// At returns the element at (row, col). It panics if either index is not
// 0 or 1.
func (m Mat2) At(row, col int) float64 {
	c := m.Col(col)
	switch row {
	case 0:
		return c.X
	case 1:
		return c.Y
	}
	panic("linmath: Mat2 row index out of range")
}

// Transpose returns the matrix with rows and columns swapped.
func (m Mat2) Transpose() Mat2 {
	return NewMat2(
		m.XAxis.X, m.YAxis.X,
		m.XAxis.Y, m.YAxis.Y,
	)
}

// Determinant returns the determinant of the matrix.
func (m Mat2) Determinant() float64 {
	return m.XAxis.X*m.YAxis.Y - m.XAxis.Y*m.YAxis.X
}

// Inverse returns the inverse of the matrix, or ErrSingular if the
// determinant is exactly zero. See ErrSingular for the exact-equality
// contract.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Determinant()
	if det == 0 {
		Logger().Debug("inverse of singular matrix rejected", "op", "Mat2.Inverse")
		return Mat2{}, ErrSingular
	}
	inv := 1 / det
	return NewMat2(
		m.YAxis.Y*inv, -m.XAxis.Y*inv,
		-m.YAxis.X*inv, m.XAxis.X*inv,
	), nil
}

// MulVec2 returns the matrix-vector product m * v.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		X: m.XAxis.X*v.X + m.YAxis.X*v.Y,
		Y: m.XAxis.Y*v.X + m.YAxis.Y*v.Y,
	}
}

// MulTransposeVec2 returns Transpose(m) * v, computed directly by dotting
// each column of m with v (the columns of m are the rows of its
// transpose).
func (m Mat2) MulTransposeVec2(v Vec2) Vec2 {
	return Vec2{
		X: m.XAxis.Dot(v),
		Y: m.YAxis.Dot(v),
	}
}

// Neg returns the matrix with every element negated.
func (m Mat2) Neg() Mat2 {
	return Mat2FromCols(m.XAxis.Neg(), m.YAxis.Neg())
}

// Add returns the componentwise sum of two matrices.
func (m Mat2) Add(n Mat2) Mat2 {
	return Mat2FromCols(m.XAxis.Add(n.XAxis), m.YAxis.Add(n.YAxis))
}

// Sub returns the componentwise difference of two matrices.
func (m Mat2) Sub(n Mat2) Mat2 {
	return Mat2FromCols(m.XAxis.Sub(n.XAxis), m.YAxis.Sub(n.YAxis))
}

// Mul returns the matrix product m * n: column j of the result is
// m.MulVec2 applied to column j of n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2FromCols(m.MulVec2(n.XAxis), m.MulVec2(n.YAxis))
}

// Div returns m * Inverse(n), or ErrSingular if n is singular.
func (m Mat2) Div(n Mat2) (Mat2, error) {
	inv, err := n.Inverse()
	if err != nil {
		return Mat2{}, err
	}
	return m.Mul(inv), nil
}

// Scale returns the matrix with every element multiplied by k.
func (m Mat2) Scale(k float64) Mat2 {
	return Mat2FromCols(m.XAxis.Mul(k), m.YAxis.Mul(k))
}

// ScaleDiagonal returns m with column 0 scaled by d.X and column 1
// scaled by d.Y. Equivalent to m.Mul(Mat2FromDiagonal(d)) without
// constructing the diagonal matrix.
func (m Mat2) ScaleDiagonal(d Vec2) Mat2 {
	return Mat2FromCols(m.XAxis.Mul(d.X), m.YAxis.Mul(d.Y))
}
