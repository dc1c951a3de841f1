package imageio

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/smaa/pixbuf"
)

// opaqueBlack is the default pixel of converted buffers.
var opaqueBlack = pixbuf.Vec4{0, 0, 0, 255}

// ToBuffer converts img to a color buffer with channels in 0..255 and
// straight (non-premultiplied) alpha. Reads outside the buffer return opaque
// black.
func ToBuffer(img image.Image) *pixbuf.Buffer[pixbuf.Vec4] {
	b := img.Bounds()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	buf := pixbuf.New(b.Dx(), b.Dy(), opaqueBlack)
	for y := range b.Dy() {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.Dx() {
			px := row[x*4 : x*4+4]
			buf.Set(x, y, pixbuf.Vec4{
				float32(px[0]), float32(px[1]), float32(px[2]), float32(px[3]),
			})
		}
	}
	return buf
}

// ToImage converts an integer color buffer with channels in 0..255 to an
// NRGBA image. Values outside the range are clamped.
func ToImage(buf *pixbuf.Buffer[pixbuf.IVec4]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	for y := range buf.Height() {
		for x := range buf.Width() {
			p := buf.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampByte(p[0]),
				G: clampByte(p[1]),
				B: clampByte(p[2]),
				A: clampByte(p[3]),
			})
		}
	}
	return img
}

// FloatToImage converts a float color buffer with channels in 0..255 to an
// NRGBA image, truncating each channel after clamping it.
func FloatToImage(buf *pixbuf.Buffer[pixbuf.Vec4]) *image.NRGBA {
	return ToImage(pixbuf.Map(buf, func(p pixbuf.Vec4) pixbuf.IVec4 {
		return p.Clamp(0, 255).Int()
	}))
}

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
