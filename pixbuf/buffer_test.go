package pixbuf

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b := New(3, 2, Vec2{9, 9})

	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("got dimensions %dx%d, want 3x2", b.Width(), b.Height())
	}
	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
	for i, p := range b.Data() {
		if p != (Vec2{}) {
			t.Errorf("pixel %d = %v, want zero", i, p)
		}
	}
	if b.Default() != (Vec2{9, 9}) {
		t.Errorf("Default() = %v", b.Default())
	}
}

func TestNew_NegativeDimensionsPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("recover() = %v, want ErrInvalidDimensions", r)
		}
	}()
	New(-1, 4, Vec1{})
}

func TestSetAt_RowMajor(t *testing.T) {
	b := New(4, 3, Vec1{})
	b.Set(1, 2, Vec1{7})

	if got := b.At(1, 2); got != (Vec1{7}) {
		t.Errorf("At(1,2) = %v, want [7]", got)
	}
	if got := b.AtIndex(2*4 + 1); got != (Vec1{7}) {
		t.Errorf("AtIndex(9) = %v, want [7]", got)
	}
	if got := b.Index(1, 2); got != 9 {
		t.Errorf("Index(1,2) = %d, want 9", got)
	}

	b.SetIndex(0, Vec1{3})
	if got := b.At(0, 0); got != (Vec1{3}) {
		t.Errorf("At(0,0) = %v, want [3]", got)
	}
}

func TestAt_OutOfRangePanics(t *testing.T) {
	b := New(2, 2, Vec1{})

	coords := []struct{ x, y int }{
		{-1, 0}, {2, 0}, {0, -1}, {0, 2}, {5, 5},
	}
	for _, c := range coords {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("At(%d,%d): recover() = %v, want ErrIndexOutOfRange", c.x, c.y, r)
				}
			}()
			b.At(c.x, c.y)
		}()
	}
}

func TestSetIndex_OutOfRangePanics(t *testing.T) {
	b := New(2, 2, Vec1{})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("recover() = %v, want ErrIndexOutOfRange", r)
		}
	}()
	b.SetIndex(4, Vec1{1})
}

func TestClone_Independent(t *testing.T) {
	b := New(2, 2, Vec4{0, 0, 0, 255})
	b.Set(1, 1, Vec4{1, 2, 3, 4})

	c := b.Clone()
	c.Set(1, 1, Vec4{})

	if b.At(1, 1) != (Vec4{1, 2, 3, 4}) {
		t.Error("modifying the clone changed the original")
	}
	if c.Default() != b.Default() {
		t.Error("clone lost the default pixel")
	}
}

func TestFillClear(t *testing.T) {
	b := New(3, 3, Vec2{})
	b.Fill(Vec2{1, 1})
	for _, p := range b.Data() {
		if p != (Vec2{1, 1}) {
			t.Fatalf("after Fill got %v", p)
		}
	}
	b.Clear()
	for _, p := range b.Data() {
		if p != (Vec2{}) {
			t.Fatalf("after Clear got %v", p)
		}
	}
}

func TestSameSize(t *testing.T) {
	a := New(4, 3, Vec4{})
	b := New(4, 3, Vec2{})
	c := New(3, 4, Vec2{})

	if !SameSize(a, b) {
		t.Error("SameSize(4x3, 4x3) = false")
	}
	if SameSize(a, c) {
		t.Error("SameSize(4x3, 3x4) = true")
	}
}

func TestApplyAndMap(t *testing.T) {
	b := New(2, 1, Vec4{0, 0, 0, 255})
	b.Set(0, 0, Vec4{10.7, 20.2, 30.9, 255})
	b.Set(1, 0, Vec4{1, 2, 3, 4})

	b.Apply(func(p Vec4) Vec4 { return p.Scale(2) })
	if got := b.At(1, 0); got != (Vec4{2, 4, 6, 8}) {
		t.Errorf("after Apply At(1,0) = %v", got)
	}

	out := Map(b, Vec4.Int)
	if got := out.At(0, 0); got != (IVec4{21, 40, 61, 510}) {
		t.Errorf("Map At(0,0) = %v", got)
	}
	if out.Default() != (IVec4{0, 0, 0, 255}) {
		t.Errorf("Map default = %v", out.Default())
	}
	if out.Width() != 2 || out.Height() != 1 {
		t.Errorf("Map size = %dx%d", out.Width(), out.Height())
	}

	sums := Map(b, func(p Vec4) Vec1 { return Vec1{p.Sum()} })
	if got := sums.At(1, 0); got != (Vec1{20}) {
		t.Errorf("Map to Vec1 = %v, want [20]", got)
	}
}
