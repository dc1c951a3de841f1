package smaa

import (
	"fmt"
	"image"

	"github.com/gogpu/smaa/imageio"
	"github.com/gogpu/smaa/pixbuf"
)

// ApplyFlat antialiases a width x height image given as a flat row-major
// array of RGBA values and returns the result in the same layout, each value
// truncated to an integer. Pixels outside the image read as opaque black.
//
// A data length other than width*height*4 returns an error wrapping
// pixbuf.ErrIncompleteData.
func (a *Antialiaser) ApplyFlat(width, height int, data []float64) ([]float64, error) {
	colors, err := pixbuf.FromFlat(width, height, pixbuf.Vec4{0, 0, 0, a.opts.maxColor}, data)
	if err != nil {
		return nil, fmt.Errorf("smaa: apply flat: %w", err)
	}
	return a.Apply(colors).ToFlat(), nil
}

// ApplyImage antialiases img. Channels are mapped from 0..255 onto the
// configured color range and back.
func (a *Antialiaser) ApplyImage(img image.Image) *image.NRGBA {
	colors := imageio.ToBuffer(img)

	scale := a.opts.maxColor / 255
	if scale != 1 {
		colors.Apply(func(p pixbuf.Vec4) pixbuf.Vec4 { return p.Scale(scale) })
	}

	out := a.ApplyFloat(colors)
	if scale != 1 {
		out.Apply(func(p pixbuf.Vec4) pixbuf.Vec4 { return p.Scale(1 / scale) })
	}

	res := imageio.ToImage(pixbuf.Map(out, pixbuf.Vec4.Int))
	res.Rect = res.Rect.Add(img.Bounds().Min)
	return res
}
