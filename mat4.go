package linmath

// Mat4 is a 4x4 column-major matrix. XAxis is column 0, YAxis column 1,
// ZAxis column 2, WAxis column 3.
//
// Mat4 carries transpose, determinant, vector products, and componentwise
// arithmetic. It has no Inverse, Mul, Div, or Neg: 4x4 values here are
// consumed as transforms, not composed or solved.
type Mat4 struct {
	XAxis, YAxis, ZAxis, WAxis Vec4
}

// NewMat4 creates a Mat4 from scalars in column-major order: the first
// four values are column 0, the next four column 1, and so on.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Mat4 {
	return Mat4{
		XAxis: Vec4{X: m00, Y: m01, Z: m02, W: m03},
		YAxis: Vec4{X: m10, Y: m11, Z: m12, W: m13},
		ZAxis: Vec4{X: m20, Y: m21, Z: m22, W: m23},
		WAxis: Vec4{X: m30, Y: m31, Z: m32, W: m33},
	}
}

// Mat4FromCols creates a Mat4 from four column vectors.
func Mat4FromCols(x, y, z, w Vec4) Mat4 {
	return Mat4{XAxis: x, YAxis: y, ZAxis: z, WAxis: w}
}

// Mat4FromDiagonal creates a Mat4 with d on the diagonal and 0 elsewhere.
func Mat4FromDiagonal(d Vec4) Mat4 {
	return NewMat4(
		d.X, 0, 0, 0,
		0, d.Y, 0, 0,
		0, 0, d.Z, 0,
		0, 0, 0, d.W,
	)
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return NewMat4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Mat4Zero returns the 4x4 zero matrix.
func Mat4Zero() Mat4 {
	return Mat4{}
}

// Col returns column i. It panics if i is not in [0, 3].
func (m Mat4) Col(i int) Vec4 {
	switch i {
	case 0:
		return m.XAxis
	case 1:
		return m.YAxis
	case 2:
		return m.ZAxis
	case 3:
		return m.WAxis
	}
	panic("linmath: Mat4 column index out of range")
}

// Row returns row i. It panics if i is not in [0, 3].
func (m Mat4) Row(i int) Vec4 {
	switch i {
	case 0:
		return Vec4{X: m.XAxis.X, Y: m.YAxis.X, Z: m.ZAxis.X, W: m.WAxis.X}
	case 1:
		return Vec4{X: m.XAxis.Y, Y: m.YAxis.Y, Z: m.ZAxis.Y, W: m.WAxis.Y}
	case 2:
		return Vec4{X: m.XAxis.Z, Y: m.YAxis.Z, Z: m.ZAxis.Z, W: m.WAxis.Z}
	case 3:
		return Vec4{X: m.XAxis.W, Y: m.YAxis.W, Z: m.ZAxis.W, W: m.WAxis.W}
	}
	panic("linmath: Mat4 row index out of range")
}

// At returns the element at (row, col). It panics if either index is not
// in [0, 3].
func (m Mat4) At(row, col int) float64 {
	c := m.Col(col)
	switch row {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	case 3:
		return c.W
	}
	panic("linmath: Mat4 row index out of range")
}

// Transpose returns the matrix with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	return Mat4FromCols(m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}

// Diagonal returns the four diagonal elements as a vector.
func (m Mat4) Diagonal() Vec4 {
	return Vec4{X: m.XAxis.X, Y: m.YAxis.Y, Z: m.ZAxis.Z, W: m.WAxis.W}
}

// Determinant returns the determinant of the matrix via cofactor
// expansion along the first row. The six 2x2 sub-determinants of the
// bottom two rows are computed once and shared across the four cofactors.
func (m Mat4) Determinant() float64 {
	m00, m01, m02, m03 := m.XAxis.X, m.YAxis.X, m.ZAxis.X, m.WAxis.X
	m10, m11, m12, m13 := m.XAxis.Y, m.YAxis.Y, m.ZAxis.Y, m.WAxis.Y
	m20, m21, m22, m23 := m.XAxis.Z, m.YAxis.Z, m.ZAxis.Z, m.WAxis.Z
	m30, m31, m32, m33 := m.XAxis.W, m.YAxis.W, m.ZAxis.W, m.WAxis.W

	a2323 := m22*m33 - m23*m32
	a1323 := m21*m33 - m23*m31
	a1223 := m21*m32 - m22*m31
	a0323 := m20*m33 - m23*m30
	a0223 := m20*m32 - m22*m30
	a0123 := m20*m31 - m21*m30

	return m00*(m11*a2323-m12*a1323+m13*a1223) -
		m01*(m10*a2323-m12*a0323+m13*a0223) +
		m02*(m10*a1323-m11*a0323+m13*a0123) -
		m03*(m10*a1223-m11*a0223+m12*a0123)
}

// MulVec4 returns the matrix-vector product m * v, as the sum of the
// columns scaled by the corresponding components of v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4Sum(
		m.XAxis.Mul(v.X),
		m.YAxis.Mul(v.Y),
		m.ZAxis.Mul(v.Z),
		m.WAxis.Mul(v.W),
	)
}

// MulTransposeVec4 returns Transpose(m) * v, computed directly by dotting
// each column of m with v (the columns of m are the rows of its
// transpose).
func (m Mat4) MulTransposeVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.XAxis.Dot(v),
		Y: m.YAxis.Dot(v),
		Z: m.ZAxis.Dot(v),
		W: m.WAxis.Dot(v),
	}
}

// Add returns the componentwise sum of two matrices.
func (m Mat4) Add(n Mat4) Mat4 {
	return Mat4FromCols(
		m.XAxis.Add(n.XAxis),
		m.YAxis.Add(n.YAxis),
		m.ZAxis.Add(n.ZAxis),
		m.WAxis.Add(n.WAxis),
	)
}

// Sub returns the componentwise difference of two matrices.
func (m Mat4) Sub(n Mat4) Mat4 {
	return Mat4FromCols(
		m.XAxis.Sub(n.XAxis),
		m.YAxis.Sub(n.YAxis),
		m.ZAxis.Sub(n.ZAxis),
		m.WAxis.Sub(n.WAxis),
	)
}

// Scale returns the matrix with every element multiplied by k.
func (m Mat4) Scale(k float64) Mat4 {
	return Mat4FromCols(
		m.XAxis.Mul(k),
		m.YAxis.Mul(k),
		m.ZAxis.Mul(k),
		m.WAxis.Mul(k),
	)
}
