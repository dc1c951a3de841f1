package pixbuf

// Apply replaces every pixel with fn(pixel).
func (b *Buffer[P]) Apply(fn func(P) P) {
	for i, p := range b.data {
		b.data[i] = fn(p)
	}
}

// Map builds a new buffer of the same size whose pixels are fn applied to the
// pixels of b. The pixel type may change, e.g. Map(out, Vec4.Int) casts a
// float buffer to an integer one. The default pixel is mapped too.
func Map[P Pixel[P], Q Pixel[Q]](b *Buffer[P], fn func(P) Q) *Buffer[Q] {
	out := &Buffer[Q]{
		width:  b.width,
		height: b.height,
		def:    fn(b.def),
		data:   make([]Q, len(b.data)),
	}
	for i, p := range b.data {
		out.data[i] = fn(p)
	}
	return out
}
