package linmath

import "math"

// epsilon for algebraic-law comparisons. The library's own singularity
// check is exact; tests of round-tripped arithmetic need a tolerance.
const epsilon = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vec2ApproxEq(a, b Vec2) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func vec3ApproxEq(a, b Vec3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func vec4ApproxEq(a, b Vec4) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) &&
		approxEq(a.Z, b.Z) && approxEq(a.W, b.W)
}

func mat2ApproxEq(a, b Mat2) bool {
	return vec2ApproxEq(a.XAxis, b.XAxis) && vec2ApproxEq(a.YAxis, b.YAxis)
}

func mat3ApproxEq(a, b Mat3) bool {
	return vec3ApproxEq(a.XAxis, b.XAxis) &&
		vec3ApproxEq(a.YAxis, b.YAxis) &&
		vec3ApproxEq(a.ZAxis, b.ZAxis)
}

func mat4ApproxEq(a, b Mat4) bool {
	return vec4ApproxEq(a.XAxis, b.XAxis) &&
		vec4ApproxEq(a.YAxis, b.YAxis) &&
		vec4ApproxEq(a.ZAxis, b.ZAxis) &&
		vec4ApproxEq(a.WAxis, b.WAxis)
}
