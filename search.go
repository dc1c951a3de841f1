package smaa

import "github.com/gogpu/smaa/pixbuf"

// Line search thresholds. A bilinear fetch over a line still reads above
// lineThreshold; any crossing edge makes the other channel nonzero.
const (
	lineThreshold = 0.8281
	diagThreshold = 0.9
)

// searchScale converts a search table code to pixels. Codes are stored as
// 127/255 per pixel of overshoot.
const searchScale = 255.0 / 127.0

// searchBias is the overshoot of a search that stopped on a full two-pixel
// step.
const searchBias = 3.25

// searchLength looks up the overshoot code of the bilinear edge sample e. The
// offset selects the left (0) or right (0.5) half of the table.
func (p *weightPass) searchLength(e pixbuf.Vec2, offset float32) float32 {
	return p.searchTable.Lookup(32*e[0]+66*offset, 32-32*e[1])
}

// searchXLeft walks left from (x, y) two pixels at a time, sampling between
// pixels so each fetch covers two edges, and returns the x coordinate of the
// line end. It stops at end, at a crossing edge or where the line breaks.
func (p *weightPass) searchXLeft(x, y, end float32) float32 {
	e := pixbuf.Vec2{0, 1}
	for x > end && e[1] > lineThreshold && e[0] == 0 {
		e = p.edges.BilinearDefault(x, y)
		x -= 2
	}
	offset := -searchScale*p.searchLength(e, 0) + searchBias
	return x + offset
}

func (p *weightPass) searchXRight(x, y, end float32) float32 {
	e := pixbuf.Vec2{0, 1}
	for x < end && e[1] > lineThreshold && e[0] == 0 {
		e = p.edges.BilinearDefault(x, y)
		x += 2
	}
	offset := -searchScale*p.searchLength(e, 0.5) + searchBias
	return x - offset
}

func (p *weightPass) searchYUp(x, y, end float32) float32 {
	e := pixbuf.Vec2{1, 0}
	for y > end && e[0] > lineThreshold && e[1] == 0 {
		e = p.edges.BilinearDefault(x, y)
		y -= 2
	}
	offset := -searchScale*p.searchLength(e.YX(), 0) + searchBias
	return y + offset
}

func (p *weightPass) searchYDown(x, y, end float32) float32 {
	e := pixbuf.Vec2{1, 0}
	for y < end && e[0] > lineThreshold && e[1] == 0 {
		e = p.edges.BilinearDefault(x, y)
		y += 2
	}
	offset := -searchScale*p.searchLength(e.YX(), 0.5) + searchBias
	return y - offset
}

// decodeDiag recovers the two edge flags mixed by a diagonal fetch taken a
// quarter pixel off center.
func decodeDiag(e pixbuf.Vec2) pixbuf.Vec2 {
	e[0] *= pixbuf.Abs32(5*e[0] - 5*0.75)
	return e.Round()
}

// decodeDiag4 is decodeDiag applied to two fetches at once.
func decodeDiag4(e pixbuf.Vec4) pixbuf.Vec4 {
	e[0] *= pixbuf.Abs32(5*e[0] - 5*0.75)
	e[2] *= pixbuf.Abs32(5*e[2] - 5*0.75)
	return e.Round()
}

// searchDiag1 follows a diagonal line from (x, y) one pixel at a time in
// direction dir, reading raw samples. It returns the number of steps taken
// and the line strength of the last sample, plus that sample.
func (p *weightPass) searchDiag1(x, y float32, dir pixbuf.Vec2) (pixbuf.Vec2, pixbuf.Vec2) {
	coord := pixbuf.Vec4{x, y, -1, 1}
	var e pixbuf.Vec2
	for coord[2] < p.diagSteps-1 && coord[3] > diagThreshold {
		coord[0] += dir[0]
		coord[1] += dir[1]
		coord[2]++
		e = p.edges.BilinearDefault(coord[0], coord[1])
		coord[3] = e.Dot(pixbuf.Splat2(0.5))
	}
	return coord.ZW(), e
}

// searchDiag2 is searchDiag1 for the other diagonal. Its samples are taken a
// quarter pixel to the right and decoded back to flags.
func (p *weightPass) searchDiag2(x, y float32, dir pixbuf.Vec2) (pixbuf.Vec2, pixbuf.Vec2) {
	coord := pixbuf.Vec4{x + 0.25, y, -1, 1}
	var e pixbuf.Vec2
	for coord[2] < p.diagSteps-1 && coord[3] > diagThreshold {
		coord[0] += dir[0]
		coord[1] += dir[1]
		coord[2]++
		e = decodeDiag(p.edges.BilinearDefault(coord[0], coord[1]))
		coord[3] = e.Dot(pixbuf.Splat2(0.5))
	}
	return coord.ZW(), e
}
