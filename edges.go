package smaa

import "github.com/gogpu/smaa/pixbuf"

// localContrastFactor is how much stronger a neighboring edge must be to
// suppress the current one.
const localContrastFactor = 2.0

// colorDelta returns the largest absolute RGB channel difference.
func colorDelta(c, n pixbuf.Vec4) float32 {
	return c.RGB().Sub(n.RGB()).Abs().MaxElem()
}

// edgeAt detects the west (channel 0) and north (channel 1) edges of pixel
// (x, y). threshold is absolute, in color units. Neighbors are read with
// clamped addressing, so border pixels compare against themselves.
func edgeAt(colors *pixbuf.Buffer[pixbuf.Vec4], x, y int, threshold float32) pixbuf.Vec2 {
	c := colors.Clamp(x, y)

	delta := pixbuf.Vec2{
		colorDelta(c, colors.Clamp(x-1, y)),
		colorDelta(c, colors.Clamp(x, y-1)),
	}
	edges := pixbuf.Step2(pixbuf.Splat2(threshold), delta)
	if edges == (pixbuf.Vec2{}) {
		return edges
	}

	// Right and bottom.
	maxDelta := delta.Max(pixbuf.Vec2{
		colorDelta(c, colors.Clamp(x+1, y)),
		colorDelta(c, colors.Clamp(x, y+1)),
	})

	// Left-left and top-top.
	maxDelta = maxDelta.Max(pixbuf.Vec2{
		colorDelta(c, colors.Clamp(x-2, y)),
		colorDelta(c, colors.Clamp(x, y-2)),
	})

	finalDelta := maxDelta.MaxElem()
	return edges.Mul(pixbuf.Step2(pixbuf.Splat2(finalDelta), delta.Scale(localContrastFactor)))
}

// detectEdges fills rows [y0, y1) of dst and returns how many pixels got at
// least one edge.
func detectEdges(dst *pixbuf.Buffer[pixbuf.Vec2], colors *pixbuf.Buffer[pixbuf.Vec4], threshold float32, y0, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := range dst.Width() {
			e := edgeAt(colors, x, y, threshold)
			dst.Set(x, y, e)
			if e != (pixbuf.Vec2{}) {
				n++
			}
		}
	}
	return n
}
