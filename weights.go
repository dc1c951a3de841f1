package smaa

import (
	"github.com/gogpu/smaa/pixbuf"
	"github.com/gogpu/smaa/tables"
)

// weightPass holds what the blending weight phase reads. It is immutable
// during the phase, so row bands can share one value.
type weightPass struct {
	edges       *pixbuf.Buffer[pixbuf.Vec2]
	areaTable   *tables.Area
	searchTable *tables.Search

	searchSteps float32
	diagSteps   float32 // 0 disables diagonal detection

	// subsample holds the sub-table indices for the vertical, horizontal
	// and the two diagonal lookups.
	subsample pixbuf.Vec4

	collector Collector
}

// diagonalWeights resolves the coverage of diagonal lines through pixel
// (x, y) whose edge flags are e.
func (p *weightPass) diagonalWeights(x, y int, e pixbuf.Vec2) pixbuf.Vec2 {
	fx, fy := float32(x), float32(y)

	var weights pixbuf.Vec2
	var d pixbuf.Vec4

	// Bottom-left to top-right.
	if e[0] > 0 {
		found, end := p.searchDiag1(fx, fy, pixbuf.Vec2{-1, 1})
		d[0], d[2] = found[0], found[1]
		if end[1] > diagThreshold {
			d[0]++
		}
	}
	found, _ := p.searchDiag1(fx, fy, pixbuf.Vec2{1, -1})
	d[1], d[3] = found[0], found[1]

	if d[0]+d[1] > 2 {
		coords := pixbuf.Vec4{-d[0] + 0.25 + fx, d[0] + fy, d[1] + fx, -d[1] - 0.25 + fy}

		lo := p.edges.BilinearDefault(coords[0]-1, coords[1])
		hi := p.edges.BilinearDefault(coords[2]+1, coords[3])
		dec := decodeDiag4(pixbuf.Vec4{lo[0], lo[1], hi[0], hi[1]})
		c := dec.Swizzle4(1, 0, 3, 2)

		cc := p.crossingPattern(c, d)
		w := p.areaDiag(d.XY(), cc, p.subsample[2])
		p.record(x, y, SampleDiagonalUp, d.XY(), w)
		weights = weights.Add(w)
	}

	// Top-left to bottom-right.
	d = pixbuf.Vec4{}
	found, _ = p.searchDiag2(fx, fy, pixbuf.Vec2{-1, -1})
	d[0], d[2] = found[0], found[1]
	if p.edges.BilinearDefault(fx+1, fy)[0] > 0 {
		found, end := p.searchDiag2(fx, fy, pixbuf.Vec2{1, 1})
		d[1], d[3] = found[0], found[1]
		if end[1] > diagThreshold {
			d[1]++
		}
	}

	if d[0]+d[1] > 2 {
		coords := pixbuf.Vec4{-d[0] + fx, -d[0] + fy, d[1] + fx, d[1] + fy}

		var c pixbuf.Vec4
		c[0] = p.edges.BilinearDefault(coords[0]-1, coords[1])[1]
		c[1] = p.edges.BilinearDefault(coords[0], coords[1]-1)[0]
		hi := p.edges.BilinearDefault(coords[2]+1, coords[3]).YX()
		c[2], c[3] = hi[0], hi[1]

		cc := p.crossingPattern(c, d)
		w := p.areaDiag(d.XY(), cc, p.subsample[3]).YX()
		p.record(x, y, SampleDiagonalDown, d.XY(), w)
		weights = weights.Add(w)
	}

	return weights
}

// crossingPattern combines the crossing edges c at both ends of a diagonal
// into area table coordinates. An end whose search ran out of steps while
// still on the line (d.zw >= 0.9) has no known crossing.
func (p *weightPass) crossingPattern(c, d pixbuf.Vec4) pixbuf.Vec2 {
	cc := c.XZ().Scale(2).Add(c.YW())
	if d[2] >= diagThreshold {
		cc[0] = 0
	}
	if d[3] >= diagThreshold {
		cc[1] = 0
	}
	return cc
}

// weightsAt computes the blending weights of pixel (x, y): channels 0-1 for
// the line on its north edge, channels 2-3 for the line on its west edge.
func (p *weightPass) weightsAt(x, y int) pixbuf.Vec4 {
	e := p.edges.At(x, y)
	if e == (pixbuf.Vec2{}) {
		return pixbuf.Vec4{}
	}

	fx, fy := float32(x), float32(y)
	off0 := pixbuf.Vec4{fx - 0.25, fy - 0.125, fx + 1.25, fy - 0.125}
	off1 := pixbuf.Vec4{fx - 0.125, fy - 0.25, fx - 0.125, fy + 1.25}
	off2 := pixbuf.Vec4{
		off0[0] - 2*p.searchSteps,
		off0[2] + 2*p.searchSteps,
		off1[1] - 2*p.searchSteps,
		off1[3] + 2*p.searchSteps,
	}

	var weights pixbuf.Vec4

	// Edge at north.
	if e[1] > 0 {
		var diag pixbuf.Vec2
		if p.diagSteps > 0 {
			diag = p.diagonalWeights(x, y, e)
		}

		if diag.Sum() == 0 {
			left := p.searchXLeft(off0[0], off0[1], off2[0])
			e1 := p.edges.BilinearDefault(left, off1[1])[0]

			right := p.searchXRight(off0[2], off0[3], off2[1])
			d := pixbuf.Vec2{left, right}.AddScalar(-fx).Round().Abs()

			e2 := p.edges.BilinearDefault(right+1, off1[1])[0]

			w := p.area(d.Sqrt(), e1, e2, p.subsample[1])
			p.record(x, y, SampleHorizontal, d, w)
			weights[0], weights[1] = w[0], w[1]
		} else {
			weights[0], weights[1] = diag[0], diag[1]
			// A diagonal already covers this pixel; skip the west edge.
			e[0] = 0
		}
	}

	// Edge at west.
	if e[0] > 0 {
		top := p.searchYUp(off1[0], off1[1], off2[2])
		e1 := p.edges.BilinearDefault(off0[0], top)[1]

		bottom := p.searchYDown(off1[2], off1[3], off2[3])
		d := pixbuf.Vec2{top, bottom}.AddScalar(-fy).Round().Abs()

		e2 := p.edges.BilinearDefault(off0[0], bottom+1)[1]

		w := p.area(d.Sqrt(), e1, e2, p.subsample[0])
		p.record(x, y, SampleVertical, d, w)
		weights[2], weights[3] = w[0], w[1]
	}

	return weights
}

// computeWeights fills rows [y0, y1) of dst and returns how many pixels got
// nonzero weights.
func (p *weightPass) computeWeights(dst *pixbuf.Buffer[pixbuf.Vec4], y0, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := range dst.Width() {
			w := p.weightsAt(x, y)
			dst.Set(x, y, w)
			if w != (pixbuf.Vec4{}) {
				n++
			}
		}
	}
	return n
}

func (p *weightPass) record(x, y int, kind SampleKind, d, w pixbuf.Vec2) {
	if p.collector == nil {
		return
	}
	p.collector.Collect(Sample{X: x, Y: y, Kind: kind, Distance: d, Weights: w})
}
