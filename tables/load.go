package tables

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/smaa/pixbuf"
)

// NewArea wraps buf as an area table. buf must be AreaWidth x AreaHeight.
func NewArea(buf *pixbuf.Buffer[pixbuf.Vec2]) (*Area, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil area buffer", ErrTableSize)
	}
	if buf.Width() != AreaWidth || buf.Height() != AreaHeight {
		return nil, fmt.Errorf("%w: area is %dx%d, want %dx%d",
			ErrTableSize, buf.Width(), buf.Height(), AreaWidth, AreaHeight)
	}
	return &Area{buf: buf}, nil
}

// NewSearch wraps buf as a search table. buf must be SearchWidth x
// SearchHeight.
func NewSearch(buf *pixbuf.Buffer[pixbuf.Vec1]) (*Search, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil search buffer", ErrTableSize)
	}
	if buf.Width() != SearchWidth || buf.Height() != SearchHeight {
		return nil, fmt.Errorf("%w: search is %dx%d, want %dx%d",
			ErrTableSize, buf.Width(), buf.Height(), SearchWidth, SearchHeight)
	}
	return &Search{buf: buf}, nil
}

// ReadArea reads an area table stored as raw RG8 bytes, row-major, two bytes
// per texel. Values are normalized by 255.
func ReadArea(r io.Reader) (*Area, error) {
	raw, err := readExact(r, AreaWidth*AreaHeight*2)
	if err != nil {
		return nil, fmt.Errorf("tables: read area: %w", err)
	}

	buf := pixbuf.New(AreaWidth, AreaHeight, pixbuf.Vec2{})
	data := buf.Data()
	for i := range data {
		data[i] = pixbuf.Vec2{
			float32(raw[2*i]) / 255,
			float32(raw[2*i+1]) / 255,
		}
	}
	return &Area{buf: buf}, nil
}

// ReadSearch reads a search table stored as raw R8 bytes, row-major. Values
// are normalized by 255.
func ReadSearch(r io.Reader) (*Search, error) {
	raw, err := readExact(r, SearchWidth*SearchHeight)
	if err != nil {
		return nil, fmt.Errorf("tables: read search: %w", err)
	}

	buf := pixbuf.New(SearchWidth, SearchHeight, pixbuf.Vec1{})
	data := buf.Data()
	for i := range data {
		data[i] = pixbuf.Vec1{float32(raw[i]) / 255}
	}
	return &Search{buf: buf}, nil
}

// readExact reads exactly n bytes and fails if the stream is shorter or
// longer.
func readExact(r io.Reader, n int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, int64(n)+1))
	if err != nil {
		return nil, err
	}
	if len(raw) != n {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrTableSize, len(raw), n)
	}
	return raw, nil
}

// AreaFromImage builds an area table from the red and green channels of
// img, which must be AreaWidth x AreaHeight.
func AreaFromImage(img image.Image) (*Area, error) {
	b := img.Bounds()
	if b.Dx() != AreaWidth || b.Dy() != AreaHeight {
		return nil, fmt.Errorf("%w: area image is %dx%d, want %dx%d",
			ErrTableSize, b.Dx(), b.Dy(), AreaWidth, AreaHeight)
	}

	buf := pixbuf.New(AreaWidth, AreaHeight, pixbuf.Vec2{})
	for y := range AreaHeight {
		for x := range AreaWidth {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			buf.Set(x, y, pixbuf.Vec2{float32(c.R) / 255, float32(c.G) / 255})
		}
	}
	return &Area{buf: buf}, nil
}

// SearchFromImage builds a search table from the red channel of img, which
// must be SearchWidth x SearchHeight.
func SearchFromImage(img image.Image) (*Search, error) {
	b := img.Bounds()
	if b.Dx() != SearchWidth || b.Dy() != SearchHeight {
		return nil, fmt.Errorf("%w: search image is %dx%d, want %dx%d",
			ErrTableSize, b.Dx(), b.Dy(), SearchWidth, SearchHeight)
	}

	buf := pixbuf.New(SearchWidth, SearchHeight, pixbuf.Vec1{})
	for y := range SearchHeight {
		for x := range SearchWidth {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			buf.Set(x, y, pixbuf.Vec1{float32(c.R) / 255})
		}
	}
	return &Search{buf: buf}, nil
}

// UniformArea returns an area table whose every texel is v. It is not a real
// coverage table; it is meant for previews and tests where a predictable
// coverage is more useful than an accurate one.
func UniformArea(v pixbuf.Vec2) *Area {
	buf := pixbuf.New(AreaWidth, AreaHeight, pixbuf.Vec2{})
	buf.Fill(v)
	return &Area{buf: buf}
}

// Image renders the area table as an NRGBA image: red and green hold the two
// coverage channels, blue is zero and alpha is opaque.
func (a *Area) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.buf.Width(), a.buf.Height()))
	for y := range a.buf.Height() {
		for x := range a.buf.Width() {
			v := a.buf.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: toByte(v[0]), G: toByte(v[1]), A: 255})
		}
	}
	return img
}

// Image renders the search table as a grayscale image.
func (s *Search) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.buf.Width(), s.buf.Height()))
	for y := range s.buf.Height() {
		for x := range s.buf.Width() {
			img.SetGray(x, y, color.Gray{Y: toByte(s.buf.At(x, y)[0])})
		}
	}
	return img
}

// Bytes returns the search table as raw R8 bytes, the layout ReadSearch
// accepts.
func (s *Search) Bytes() []byte {
	data := s.buf.Data()
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = toByte(v[0])
	}
	return out
}

// toByte converts a normalized value to 0..255, rounding to nearest.
func toByte(v float32) uint8 {
	f := v*255 + 0.5
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
