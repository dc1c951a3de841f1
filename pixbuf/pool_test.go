package pixbuf

import (
	"sync"
	"testing"
)

func TestPoolGetPut(t *testing.T) {
	pool := NewPool[Vec2](4)

	buf := pool.Get(8, 8, Vec2{})
	if buf.Width() != 8 || buf.Height() != 8 {
		t.Fatalf("Get returned %dx%d, want 8x8", buf.Width(), buf.Height())
	}

	buf.Fill(Vec2{1, 1})
	pool.Put(buf)

	if got := pool.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	reused := pool.Get(8, 8, Vec2{5, 5})
	if reused != buf {
		t.Error("Get did not reuse the pooled buffer")
	}
	for i, p := range reused.Data() {
		if p != (Vec2{}) {
			t.Fatalf("reused pixel %d = %v, want zero", i, p)
		}
	}
	if reused.Default() != (Vec2{5, 5}) {
		t.Errorf("reused Default() = %v, want [5 5]", reused.Default())
	}
}

func TestPoolBucketsBySize(t *testing.T) {
	pool := NewPool[Vec4](0)
	pool.Put(New(4, 4, Vec4{}))

	other := pool.Get(4, 8, Vec4{})
	if other.Width() != 4 || other.Height() != 8 {
		t.Errorf("Get returned %dx%d, want 4x8", other.Width(), other.Height())
	}
	if pool.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (4x4 buffer untouched)", pool.Len())
	}
}

func TestPoolMaxSize(t *testing.T) {
	pool := NewPool[Vec1](2)
	for range 5 {
		pool.Put(New(2, 2, Vec1{}))
	}
	if got := pool.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestPoolPutNil(t *testing.T) {
	pool := NewPool[Vec1](0)
	pool.Put(nil)
	if pool.Len() != 0 {
		t.Error("Put(nil) stored a buffer")
	}
}

func TestPoolConcurrent(t *testing.T) {
	pool := NewPool[Vec4](8)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				b := pool.Get(16, 16, Vec4{})
				b.Set(3, 3, Vec4{1, 1, 1, 1})
				pool.Put(b)
			}
		}()
	}
	wg.Wait()

	if pool.Len() > 8 {
		t.Errorf("Len() = %d, exceeds bucket capacity 8", pool.Len())
	}
}
