package smaa

import "github.com/gogpu/smaa/pixbuf"

// minBlend is the total weight below which a pixel is left untouched.
const minBlend = 1e-5

// blendAt mixes pixel (x, y) with its neighbors according to the weights
// around it. Colors and weights are read with default addressing.
func blendAt(colors *pixbuf.Buffer[pixbuf.Vec4], weights *pixbuf.Buffer[pixbuf.Vec4], x, y int) (pixbuf.Vec4, bool) {
	w := weights.OrDefault(x, y)
	a := pixbuf.Vec4{
		weights.OrDefault(x+1, y)[3], // west line of the right neighbor
		weights.OrDefault(x, y+1)[1], // north line of the pixel below
		w[2],                         // own west line
		w[0],                         // own north line
	}

	if float64(a.Sum()) < minBlend {
		return colors.OrDefault(x, y), false
	}

	horizontal := max(a[0], a[2]) > max(a[1], a[3])

	offset := pixbuf.Vec4{0, a[1], 0, a[3]}
	weight := pixbuf.Vec2{a[1], a[3]}
	if horizontal {
		offset = pixbuf.Vec4{a[0], 0, a[2], 0}
		weight = pixbuf.Vec2{a[0], a[2]}
	}
	weight = weight.Normalize()

	fx, fy := float32(x), float32(y)
	c := colors.BilinearDefault(fx+offset[0], fy+offset[1]).Scale(weight[0])
	c = c.Add(colors.BilinearDefault(fx-offset[2], fy-offset[3]).Scale(weight[1]))
	return c, true
}

// blendRows fills rows [y0, y1) of dst and returns how many pixels were
// blended.
func blendRows(dst, colors, weights *pixbuf.Buffer[pixbuf.Vec4], y0, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := range dst.Width() {
			c, blended := blendAt(colors, weights, x, y)
			dst.Set(x, y, c)
			if blended {
				n++
			}
		}
	}
	return n
}
