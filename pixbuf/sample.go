package pixbuf

import "math"

// Addressing selects how reads outside the grid are resolved.
type Addressing uint8

const (
	// AddressDefault returns the buffer's default pixel.
	AddressDefault Addressing = iota

	// AddressClamp returns the nearest edge pixel.
	AddressClamp

	// AddressWrap wraps the coordinate around (tiling).
	AddressWrap
)

// String returns a string representation of the addressing mode.
func (a Addressing) String() string {
	switch a {
	case AddressDefault:
		return "Default"
	case AddressClamp:
		return "Clamp"
	case AddressWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// OrDefault returns the pixel at (x, y), or the default pixel when the
// coordinate is outside the grid.
func (b *Buffer[P]) OrDefault(x, y int) P {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return b.def
	}
	return b.data[y*b.width+x]
}

// Clamp returns the pixel at (x, y) with the coordinate clamped to the grid.
// An empty buffer yields the default pixel.
func (b *Buffer[P]) Clamp(x, y int) P {
	if len(b.data) == 0 {
		return b.def
	}
	x = clamp(x, 0, b.width-1)
	y = clamp(y, 0, b.height-1)
	return b.data[y*b.width+x]
}

// Wrap returns the pixel at (x, y) with the coordinate wrapped around the
// grid. Negative coordinates wrap from the opposite edge.
func (b *Buffer[P]) Wrap(x, y int) P {
	if len(b.data) == 0 {
		return b.def
	}
	x = mod(x, b.width)
	y = mod(y, b.height)
	return b.data[y*b.width+x]
}

// Sample resolves (x, y) with the given addressing policy.
func (b *Buffer[P]) Sample(x, y int, mode Addressing) P {
	switch mode {
	case AddressClamp:
		return b.Clamp(x, y)
	case AddressWrap:
		return b.Wrap(x, y)
	default:
		return b.OrDefault(x, y)
	}
}

// Bilinear interpolates the four pixels around the continuous coordinate
// (x, y). Pixel centers sit on integer coordinates, so sampling exactly at an
// integer coordinate returns that pixel. Each tap is resolved with mode.
func (b *Buffer[P]) Bilinear(x, y float32, mode Addressing) P {
	fx := math.Floor(float64(x))
	fy := math.Floor(float64(y))

	tx := x - float32(fx)
	ty := y - float32(fy)

	cx := int(fx)
	cy := int(fy)

	p00 := b.Sample(cx, cy, mode)
	p10 := b.Sample(cx+1, cy, mode)
	p01 := b.Sample(cx, cy+1, mode)
	p11 := b.Sample(cx+1, cy+1, mode)

	return p00.Lerp(p10, tx).Lerp(p01.Lerp(p11, tx), ty)
}

// BilinearDefault is Bilinear with default addressing, the policy the SMAA
// pipeline uses for every texture fetch.
func (b *Buffer[P]) BilinearDefault(x, y float32) P {
	return b.Bilinear(x, y, AddressDefault)
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// mod returns the non-negative remainder of a / n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
