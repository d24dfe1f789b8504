package linmath

import "math"

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar
// part W.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(r Quat) float64 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Length returns the length of the quaternion.
func (q Quat) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns a unit quaternion in the same direction.
// The zero quaternion normalizes to the identity quaternion.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length == 0 {
		return QuatIdentity()
	}
	return Quat{X: q.X / length, Y: q.Y / length, Z: q.Z / length, W: q.W / length}
}
