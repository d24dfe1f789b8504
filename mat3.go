package linmath

// Mat3 is a 3x3 column-major matrix. XAxis is column 0, YAxis column 1,
// ZAxis column 2:
//
//	| XAxis.X  YAxis.X  ZAxis.X |
//	| XAxis.Y  YAxis.Y  ZAxis.Y |
//	| XAxis.Z  YAxis.Z  ZAxis.Z |
type Mat3 struct {
	XAxis, YAxis, ZAxis Vec3
}

// NewMat3 creates a Mat3 from scalars in column-major order:
// (m00, m01, m02) is column 0, (m10, m11, m12) column 1, and
// (m20, m21, m22) column 2.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Mat3 {
	return Mat3{
		XAxis: Vec3{X: m00, Y: m01, Z: m02},
		YAxis: Vec3{X: m10, Y: m11, Z: m12},
		ZAxis: Vec3{X: m20, Y: m21, Z: m22},
	}
}

// Mat3FromCols creates a Mat3 from three column vectors.
func Mat3FromCols(x, y, z Vec3) Mat3 {
	return Mat3{XAxis: x, YAxis: y, ZAxis: z}
}

// Mat3FromDiagonal creates a Mat3 with d on the diagonal and 0 elsewhere.
func Mat3FromDiagonal(d Vec3) Mat3 {
	return NewMat3(
		d.X, 0, 0,
		0, d.Y, 0,
		0, 0, d.Z,
	)
}

// Mat3FromQuat creates a rotation matrix from a quaternion. A valid
// rotation requires a unit quaternion, so q is normalized first; non-unit
// input is silently normalized, not rejected.
func Mat3FromQuat(q Quat) Mat3 {
	q = q.Normalize()

	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	xx := q.X * x2
	yy := q.Y * y2
	zz := q.Z * z2
	xy := q.X * y2
	xz := q.X * z2
	yz := q.Y * z2
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2

	return Mat3FromCols(
		Vec3{X: 1 - (yy + zz), Y: xy + wz, Z: xz - wy},
		Vec3{X: xy - wz, Y: 1 - (xx + zz), Z: yz + wx},
		Vec3{X: xz + wy, Y: yz - wx, Z: 1 - (xx + yy)},
	)
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return NewMat3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Mat3Zero returns the 3x3 zero matrix.
func Mat3Zero() Mat3 {
	return Mat3{}
}

// Col returns column i. It panics if i is not in [0, 2].
func (m Mat3) Col(i int) Vec3 {
	switch i {
	case 0:
		return m.XAxis
	case 1:
		return m.YAxis
	case 2:
		return m.ZAxis
	}
	panic("linmath: Mat3 column index out of range")
}

// Row returns row i. It panics if i is not in [0, 2].
func (m Mat3) Row(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{X: m.XAxis.X, Y: m.YAxis.X, Z: m.ZAxis.X}
	case 1:
		return Vec3{X: m.XAxis.Y, Y: m.YAxis.Y, Z: m.ZAxis.Y}
	case 2:
		return Vec3{X: m.XAxis.Z, Y: m.YAxis.Z, Z: m.ZAxis.Z}
	}
	panic("linmath: Mat3 row index out of range")
}

// At returns the element at (row, col). It panics if either index is not
// in [0, 2].
func (m Mat3) At(row, col int) float64 {
	c := m.Col(col)
	switch row {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	}
	panic("linmath: Mat3 row index out of range")
}

// Transpose returns the matrix with rows and columns swapped.
func (m Mat3) Transpose() Mat3 {
	return Mat3FromCols(m.Row(0), m.Row(1), m.Row(2))
}

// Determinant returns the determinant of the matrix, expanded over the
// three columns.
func (m Mat3) Determinant() float64 {
	a, b, c := m.XAxis, m.YAxis, m.ZAxis
	return a.X*b.Y*c.Z - a.X*b.Z*c.Y -
		a.Y*b.X*c.Z + a.Y*b.Z*c.X +
		a.Z*b.X*c.Y - a.Z*b.Y*c.X
}

// submatrix returns the 2x2 matrix left after dropping the given row and
// column.
func (m Mat3) submatrix(row, col int) Mat2 {
	var e [2][2]float64
	cj := 0
	for j := 0; j < 3; j++ {
		if j == col {
			continue
		}
		ci := 0
		for i := 0; i < 3; i++ {
			if i == row {
				continue
			}
			e[cj][ci] = m.At(i, j)
			ci++
		}
		cj++
	}
	return NewMat2(e[0][0], e[0][1], e[1][0], e[1][1])
}

// Inverse returns the inverse of the matrix, or ErrSingular if the
// determinant is exactly zero. See ErrSingular for the exact-equality
// contract.
//
// Each element of the result is a signed 2x2 minor determinant: the
// adjugate is the transpose of the cofactor matrix, so element (i, j)
// comes from the submatrix that drops row j and column i.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if det == 0 {
		Logger().Debug("inverse of singular matrix rejected", "op", "Mat3.Inverse")
		return Mat3{}, ErrSingular
	}
	inv := 1 / det

	var cols [3]Vec3
	for j := 0; j < 3; j++ {
		var c [3]float64
		for i := 0; i < 3; i++ {
			minor := m.submatrix(j, i).Determinant()
			if (i+j)%2 == 1 {
				minor = -minor
			}
			c[i] = minor * inv
		}
		cols[j] = Vec3{X: c[0], Y: c[1], Z: c[2]}
	}
	return Mat3FromCols(cols[0], cols[1], cols[2]), nil
}

// MulVec3 returns the matrix-vector product m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m.XAxis.Mul(v.X).Add(m.YAxis.Mul(v.Y)).Add(m.ZAxis.Mul(v.Z))
}

// MulTransposeVec3 returns Transpose(m) * v, computed directly by dotting
// each column of m with v.
func (m Mat3) MulTransposeVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.XAxis.Dot(v),
		Y: m.YAxis.Dot(v),
		Z: m.ZAxis.Dot(v),
	}
}

// Neg returns the matrix with every element negated.
func (m Mat3) Neg() Mat3 {
	return Mat3FromCols(m.XAxis.Neg(), m.YAxis.Neg(), m.ZAxis.Neg())
}

// Add returns the componentwise sum of two matrices.
func (m Mat3) Add(n Mat3) Mat3 {
	return Mat3FromCols(m.XAxis.Add(n.XAxis), m.YAxis.Add(n.YAxis), m.ZAxis.Add(n.ZAxis))
}

// Sub returns the componentwise difference of two matrices.
func (m Mat3) Sub(n Mat3) Mat3 {
	return Mat3FromCols(m.XAxis.Sub(n.XAxis), m.YAxis.Sub(n.YAxis), m.ZAxis.Sub(n.ZAxis))
}

// Mul returns the matrix product m * n: column j of the result is
// m.MulVec3 applied to column j of n.
func (m Mat3) Mul(n Mat3) Mat3 {
	return Mat3FromCols(m.MulVec3(n.XAxis), m.MulVec3(n.YAxis), m.MulVec3(n.ZAxis))
}

// Div returns m * Inverse(n), or ErrSingular if n is singular.
func (m Mat3) Div(n Mat3) (Mat3, error) {
	inv, err := n.Inverse()
	if err != nil {
		return Mat3{}, err
	}
	return m.Mul(inv), nil
}

// Scale returns the matrix with every element multiplied by k.
func (m Mat3) Scale(k float64) Mat3 {
	return Mat3FromCols(m.XAxis.Mul(k), m.YAxis.Mul(k), m.ZAxis.Mul(k))
}

// ScaleDiagonal returns m with column i scaled by component i of d.
// Equivalent to m.Mul(Mat3FromDiagonal(d)) without constructing the
// diagonal matrix.
func (m Mat3) ScaleDiagonal(d Vec3) Mat3 {
	return Mat3FromCols(m.XAxis.Mul(d.X), m.YAxis.Mul(d.Y), m.ZAxis.Mul(d.Z))
}
