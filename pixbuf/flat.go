package pixbuf

import "fmt"

// FromFlat builds a buffer from a flat array of width*height*depth channel
// values laid out row-major, pixel after pixel. A length mismatch returns
// ErrIncompleteData and no buffer.
func FromFlat[P Pixel[P]](width, height int, def P, data []float64) (*Buffer[P], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	depth := def.Len()
	if want := width * height * depth; len(data) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d (%dx%dx%d)",
			ErrIncompleteData, len(data), want, width, height, depth)
	}

	b := New(width, height, def)
	for i := range b.data {
		var p P
		base := i * depth
		for c := range depth {
			p = p.WithElem(c, data[base+c])
		}
		b.data[i] = p
	}
	return b, nil
}

// ToFlat returns the channel values of every pixel in the layout FromFlat
// accepts.
func (b *Buffer[P]) ToFlat() []float64 {
	if len(b.data) == 0 {
		return nil
	}
	depth := b.data[0].Len()
	out := make([]float64, len(b.data)*depth)
	for i, p := range b.data {
		base := i * depth
		for c := range depth {
			out[base+c] = p.Elem(c)
		}
	}
	return out
}
