package linmath

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := V2(3, 4)
	w := V2(-1, 2)

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", v.Add(w), V2(2, 6)},
		{"sub", v.Sub(w), V2(4, 2)},
		{"mul", v.Mul(2), V2(6, 8)},
		{"div", v.Div(2), V2(1.5, 2)},
		{"neg", v.Neg(), V2(-3, -4)},
		{"lerp start", v.Lerp(w, 0), v},
		{"lerp end", v.Lerp(w, 1), w},
		{"lerp mid", v.Lerp(w, 0.5), V2(1, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec2ApproxEq(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2DotCross(t *testing.T) {
	v := V2(3, 4)
	w := V2(-1, 2)
	if got := v.Dot(w); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := v.Cross(w); got != 10 {
		t.Errorf("Cross = %v, want 10", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := V2(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if !vec2ApproxEq(n, V2(0.6, 0.8)) {
		t.Errorf("Normalize = %+v, want (0.6, 0.8)", n)
	}
	if !approxEq(n.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(zero) = %+v, want zero", got)
	}
}

func TestVec2Map(t *testing.T) {
	v := V2(1, -2)
	if got := v.Map(math.Abs); got != V2(1, 2) {
		t.Errorf("Map(abs) = %+v, want (1, 2)", got)
	}
	w := V2(10, 20)
	got := v.Map2(w, func(a, b float64) float64 { return a + b })
	if got != v.Add(w) {
		t.Errorf("Map2(+) = %+v, want %+v", got, v.Add(w))
	}
}

func TestVec2Sum(t *testing.T) {
	if got := Vec2Sum(); got != (Vec2{}) {
		t.Errorf("Vec2Sum() = %+v, want zero", got)
	}
	got := Vec2Sum(V2(1, 2), V2(3, 4), V2(-1, -1))
	if got != V2(3, 5) {
		t.Errorf("Vec2Sum = %+v, want (3, 5)", got)
	}
}
