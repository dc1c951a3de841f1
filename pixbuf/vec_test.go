package pixbuf

import (
	"math"
	"testing"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-2.5, -3},
		{0.49, 0},
		{-0.49, 0},
	}

	for _, tt := range tests {
		if got := round32(tt.in); got != tt.want {
			t.Errorf("round32(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAbs32(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1.25, 1.25},
		{-1.25, 1.25},
		{-3.75, 3.75},
	}

	for _, tt := range tests {
		if got := Abs32(tt.in); got != tt.want {
			t.Errorf("Abs32(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, -2}
	b := Vec2{3, 4}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, -6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec2{3, -8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Abs(); got != (Vec2{1, 2}) {
		t.Errorf("Abs = %v", got)
	}
	if got := a.Max(b); got != (Vec2{3, 4}) {
		t.Errorf("Max = %v", got)
	}
	if got := a.Min(b); got != (Vec2{1, -2}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := b.Normalize(); got != (Vec2{3.0 / 7, 4.0 / 7}) {
		t.Errorf("Normalize = %v", got)
	}
	if got := a.YX(); got != (Vec2{-2, 1}) {
		t.Errorf("YX = %v", got)
	}
	if got := (Vec2{-1, 2}).Clamp(0, 1); got != (Vec2{0, 1}) {
		t.Errorf("Clamp = %v", got)
	}
	if got := (Vec2{9, 16}).Sqrt(); got != (Vec2{3, 4}) {
		t.Errorf("Sqrt = %v", got)
	}
}

func TestStep2(t *testing.T) {
	got := Step2(Splat2(25.5), Vec2{25.5, 25.4})
	if got != (Vec2{1, 0}) {
		t.Errorf("Step2 = %v, want [1 0] (edge is inclusive)", got)
	}
}

func TestLerp(t *testing.T) {
	from := Vec4{0, 10, 20, 255}
	to := Vec4{100, 10, 0, 255}

	if got := from.Lerp(to, 0); got != from {
		t.Errorf("Lerp(0) = %v, want %v", got, from)
	}
	if got := from.Lerp(to, 1); got != to {
		t.Errorf("Lerp(1) = %v, want %v", got, to)
	}
	if got := from.Lerp(to, 0.25); got != (Vec4{25, 10, 15, 255}) {
		t.Errorf("Lerp(0.25) = %v", got)
	}
}

func TestVec4Selection(t *testing.T) {
	v := Vec4{1, 2, 3, 4}

	if v.XY() != (Vec2{1, 2}) || v.ZW() != (Vec2{3, 4}) {
		t.Errorf("XY/ZW = %v/%v", v.XY(), v.ZW())
	}
	if v.XZ() != (Vec2{1, 3}) || v.YW() != (Vec2{2, 4}) {
		t.Errorf("XZ/YW = %v/%v", v.XZ(), v.YW())
	}
	if v.RGB() != (Vec3{1, 2, 3}) {
		t.Errorf("RGB = %v", v.RGB())
	}
	if got := v.Swizzle4(1, 0, 3, 2); got != (Vec4{2, 1, 4, 3}) {
		t.Errorf("Swizzle4 = %v", got)
	}
	if got := v.Swizzle2(3, 0); got != (Vec2{4, 1}) {
		t.Errorf("Swizzle2 = %v", got)
	}
	if got := v.Sum(); got != 10 {
		t.Errorf("Sum = %v", got)
	}
}

func TestVec3MaxElem(t *testing.T) {
	c := Vec3{10, 200, 30}
	d := Vec3{250, 0, 30}

	if got := c.Sub(d).Abs().MaxElem(); got != 240 {
		t.Errorf("max channel delta = %v, want 240", got)
	}
}

func TestIntTruncates(t *testing.T) {
	got := Vec4{127.5, 0.999, -1.5, 255}.Int()
	want := IVec4{127, 0, -1, 255}
	if got != want {
		t.Errorf("Int() = %v, want %v", got, want)
	}
}

func TestIVec4Lerp(t *testing.T) {
	got := IVec4{0, 0, 0, 255}.Lerp(IVec4{255, 100, 3, 255}, 0.5)
	want := IVec4{127, 50, 1, 255}
	if got != want {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}

func TestWithElem(t *testing.T) {
	var v Vec4
	v = v.WithElem(2, 0.5)
	if v != (Vec4{0, 0, 0.5, 0}) {
		t.Errorf("WithElem = %v", v)
	}
	if got := v.Elem(2); got != 0.5 {
		t.Errorf("Elem = %v", got)
	}
	if (Vec1{}).Len() != 1 || (Vec2{}).Len() != 2 || (Vec3{}).Len() != 3 || (Vec4{}).Len() != 4 || (IVec4{}).Len() != 4 {
		t.Error("unexpected channel depth")
	}
}

func TestNormalizeSumsToOne(t *testing.T) {
	for _, v := range []Vec2{{0.3, 0.1}, {0, 0.7}, {0.25, 0.25}} {
		n := v.Normalize()
		if math.Abs(float64(n.Sum())-1) > 1e-6 {
			t.Errorf("Normalize(%v) sums to %v", v, n.Sum())
		}
	}
}
