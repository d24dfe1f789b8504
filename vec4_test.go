package linmath

import (
	"math"
	"testing"
)

func TestVec4Arithmetic(t *testing.T) {
	v := V4(1, 2, 3, 4)
	w := V4(-4, 3, -2, 1)

	tests := []struct {
		name string
		got  Vec4
		want Vec4
	}{
		{"add", v.Add(w), V4(-3, 5, 1, 5)},
		{"sub", v.Sub(w), V4(5, -1, 5, 3)},
		{"mul", v.Mul(2), V4(2, 4, 6, 8)},
		{"div", v.Div(4), V4(0.25, 0.5, 0.75, 1)},
		{"neg", v.Neg(), V4(-1, -2, -3, -4)},
		{"lerp mid", v.Lerp(w, 0.5), V4(-1.5, 2.5, 0.5, 2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec4ApproxEq(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestVec4Dot(t *testing.T) {
	if got := V4(1, 2, 3, 4).Dot(V4(-4, 3, -2, 1)); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := V4(1, 2, 3, 4).Dot(V4(1, 1, 1, 1)); got != 10 {
		t.Errorf("Dot = %v, want 10", got)
	}
}

func TestVec4Normalize(t *testing.T) {
	n := V4(2, 0, 0, 0).Normalize()
	if n != V4(1, 0, 0, 0) {
		t.Errorf("Normalize = %+v, want (1, 0, 0, 0)", n)
	}
	n = V4(1, 1, 1, 1).Normalize()
	if !approxEq(n.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if got := (Vec4{}).Normalize(); got != (Vec4{}) {
		t.Errorf("Normalize(zero) = %+v, want zero", got)
	}
}

func TestVec4Map(t *testing.T) {
	v := V4(-1, 4, -9, 16)
	if got := v.Map(math.Abs); got != V4(1, 4, 9, 16) {
		t.Errorf("Map(abs) = %+v", got)
	}
	got := v.Map2(v, func(a, b float64) float64 { return a - b })
	if got != (Vec4{}) {
		t.Errorf("Map2(self-sub) = %+v, want zero", got)
	}
}

func TestVec4Sum(t *testing.T) {
	got := Vec4Sum(V4(1, 2, 3, 4), V4(4, 3, 2, 1))
	if got != V4(5, 5, 5, 5) {
		t.Errorf("Vec4Sum = %+v, want (5, 5, 5, 5)", got)
	}
	if got := Vec4Sum(); got != (Vec4{}) {
		t.Errorf("Vec4Sum() = %+v, want zero", got)
	}
}
