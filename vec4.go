package linmath

import "math"

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the componentwise sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the vector divided by a scalar.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns the vector with every component negated.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Length returns the length of the vector.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSquared returns the squared length of the vector.
func (v Vec4) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{}
	}
	return v.Div(length)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec4) Lerp(w Vec4, t float64) Vec4 {
	return v.Add(w.Sub(v).Mul(t))
}

// Map applies f to every component and returns the resulting vector.
func (v Vec4) Map(f func(float64) float64) Vec4 {
	return Vec4{X: f(v.X), Y: f(v.Y), Z: f(v.Z), W: f(v.W)}
}

// Map2 applies f to corresponding components of v and w and returns the
// resulting vector.
func (v Vec4) Map2(w Vec4, f func(a, b float64) float64) Vec4 {
	return Vec4{X: f(v.X, w.X), Y: f(v.Y, w.Y), Z: f(v.Z, w.Z), W: f(v.W, w.W)}
}

// Vec4Sum returns the componentwise sum of the given vectors.
// The sum of no vectors is the zero vector.
func Vec4Sum(vs ...Vec4) Vec4 {
	var sum Vec4
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum
}
