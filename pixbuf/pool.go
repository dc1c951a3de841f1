package pixbuf

import "sync"

// Pool is a thread-safe pool for reusing buffers of one pixel type.
//
// Pool groups buffers by their dimensions, so repeated pipeline runs over
// same-sized images reuse the intermediate buffers instead of allocating new
// ones each time.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[P Pixel[P]] struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer[P]
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically sized buffers.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool that keeps at most maxPerBucket buffers of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool[P Pixel[P]](maxPerBucket int) *Pool[P] {
	return &Pool[P]{
		buckets: make(map[poolKey][]*Buffer[P]),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of the given size with default pixel def,
// reusing a pooled one when available.
func (p *Pool[P]) Get(width, height int, def P) *Buffer[P] {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.def = def
		return buf
	}
	p.mu.Unlock()

	return New(width, height, def)
}

// Put returns a buffer to the pool. The buffer is cleared before it is
// stored; the caller must not use it afterwards. Nil buffers and buffers
// beyond the bucket capacity are dropped.
func (p *Pool[P]) Put(buf *Buffer[P]) {
	if buf == nil {
		return
	}

	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all sizes.
func (p *Pool[P]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
