// Package pixbuf provides fixed-size pixel buffers for the SMAA pipeline.
//
// A Buffer is a dense row-major grid of small fixed-width vectors (the
// pixels) with a default value returned for out-of-range reads. Reads outside
// the grid go through an addressing policy (clamp, wrap or default) and can be
// bilinearly interpolated, which is how the pipeline emulates GPU texture
// fetches on the CPU.
package pixbuf

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrIncompleteData is returned when a flat array does not hold exactly
	// width*height*depth values.
	ErrIncompleteData = errors.New("pixbuf: incomplete data")

	// ErrIndexOutOfRange is the panic value (wrapped) for raw accesses
	// outside the backing store. It signals a programming error.
	ErrIndexOutOfRange = errors.New("pixbuf: index out of range")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")
)

// Pixel is the constraint satisfied by the vector types a Buffer can hold.
type Pixel[P any] interface {
	comparable

	// Lerp interpolates from the receiver towards to by t.
	Lerp(to P, t float32) P

	// Len returns the number of channels.
	Len() int

	// Elem returns channel i as float64.
	Elem(i int) float64

	// WithElem returns a copy with channel i set to x.
	WithElem(i int, x float64) P
}

// Buffer is a width x height grid of pixels stored row-major.
//
// Thread safety: concurrent reads are safe. Writes to distinct pixels from
// different goroutines are safe as long as no goroutine reads a pixel that
// another one writes.
type Buffer[P Pixel[P]] struct {
	width  int
	height int
	def    P
	data   []P
}

// New creates a zero-initialized buffer. def is returned by reads outside the
// grid under the default addressing policy.
func New[P Pixel[P]](width, height int, def P) *Buffer[P] {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height))
	}
	return &Buffer[P]{
		width:  width,
		height: height,
		def:    def,
		data:   make([]P, width*height),
	}
}

// Clone creates a deep copy of the buffer.
func (b *Buffer[P]) Clone() *Buffer[P] {
	data := make([]P, len(b.data))
	copy(data, b.data)
	return &Buffer[P]{
		width:  b.width,
		height: b.height,
		def:    b.def,
		data:   data,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer[P]) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer[P]) Height() int {
	return b.height
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer[P]) Bounds() (int, int) {
	return b.width, b.height
}

// Len returns the number of pixels.
func (b *Buffer[P]) Len() int {
	return len(b.data)
}

// Default returns the out-of-range value.
func (b *Buffer[P]) Default() P {
	return b.def
}

// SameSize reports whether b and other have identical dimensions.
func SameSize[P Pixel[P], Q Pixel[Q]](b *Buffer[P], other *Buffer[Q]) bool {
	return b.width == other.width && b.height == other.height
}

// Data returns the backing store. Modifying it modifies the buffer.
func (b *Buffer[P]) Data() []P {
	return b.data
}

// Index returns the store slot of (x, y).
func (b *Buffer[P]) Index(x, y int) int {
	return y*b.width + x
}

// At returns the pixel at (x, y). It panics if the coordinate is outside the
// buffer.
func (b *Buffer[P]) At(x, y int) P {
	b.check(x, y)
	return b.data[y*b.width+x]
}

// Set stores p at (x, y). It panics if the coordinate is outside the buffer.
func (b *Buffer[P]) Set(x, y int, p P) {
	b.check(x, y)
	b.data[y*b.width+x] = p
}

// AtIndex returns the pixel at store slot i.
func (b *Buffer[P]) AtIndex(i int) P {
	if i < 0 || i >= len(b.data) {
		panic(fmt.Errorf("%w: slot %d of %d", ErrIndexOutOfRange, i, len(b.data)))
	}
	return b.data[i]
}

// SetIndex stores p at slot i.
func (b *Buffer[P]) SetIndex(i int, p P) {
	if i < 0 || i >= len(b.data) {
		panic(fmt.Errorf("%w: slot %d of %d", ErrIndexOutOfRange, i, len(b.data)))
	}
	b.data[i] = p
}

// Fill sets every pixel to p.
func (b *Buffer[P]) Fill(p P) {
	for i := range b.data {
		b.data[i] = p
	}
}

// Clear sets every pixel to the zero value.
func (b *Buffer[P]) Clear() {
	clear(b.data)
}

// InBounds reports whether (x, y) addresses a pixel.
func (b *Buffer[P]) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer[P]) check(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndexOutOfRange, x, y, b.width, b.height))
	}
}
