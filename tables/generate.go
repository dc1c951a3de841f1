package tables

import "github.com/gogpu/smaa/pixbuf"

// The search table is indexed by bilinearly fetched edge values. A fetch at
// (-0.25, -0.125) from a pixel mixes a 2x2 block of binary edge flags with
// weights 1/32, 3/32, 7/32 and 21/32, so every one of the 16 possible blocks
// lands on a distinct multiple of 1/32. patternKey recovers the block from
// that multiple.

// edgeBlock holds four binary edge flags: top-left, top-right, bottom-left,
// bottom-right.
type edgeBlock [4]bool

// patternKey returns the fetch value of b scaled by 32.
func patternKey(b edgeBlock) int {
	k := 0
	for i, w := range [4]int{1, 3, 7, 21} {
		if b[i] {
			k += w
		}
	}
	return k
}

// blocks maps a scaled fetch value back to its edge block.
var blocks = func() map[int]edgeBlock {
	m := make(map[int]edgeBlock, 16)
	for bits := range 16 {
		var b edgeBlock
		for i := range 4 {
			b[i] = bits&(1<<i) != 0
		}
		m[patternKey(b)] = b
	}
	return m
}()

// deltaLeft returns how many pixels a left search overshot, given the
// crossing (left) and line (top) edge blocks of its last fetch.
func deltaLeft(left, top edgeBlock) int {
	d := 0
	// An edge under the second pixel: continue.
	if top[3] {
		d++
	}
	// Another edge under the first pixel and no crossing edges: continue.
	if d == 1 && top[2] && !left[1] && !left[3] {
		d++
	}
	return d
}

// deltaRight is deltaLeft for searches to the right.
func deltaRight(left, top edgeBlock) int {
	d := 0
	if top[3] && !left[1] && !left[3] {
		d++
	}
	if d == 1 && top[2] && !left[0] && !left[2] {
		d++
	}
	return d
}

// searchCode converts an overshoot in pixels to the stored table value.
func searchCode(d int) float32 {
	return float32(127*d) / 255
}

// GenerateSearch builds the canonical SearchWidth x SearchHeight search
// table.
//
// The full table is 66x33: the left half answers left searches and the
// right half right searches, with x indexing the crossing edges and y the
// line edges. Only the rows with a line edge under the last pixel matter,
// so the stored table keeps rows 17..32, flipped vertically, and drops the
// two rightmost columns.
func GenerateSearch() *Search {
	buf := pixbuf.New(SearchWidth, SearchHeight, pixbuf.Vec1{})

	for r := range SearchHeight {
		topKey := 32 - r
		for c := range SearchWidth {
			leftKey, delta := c, deltaLeft
			if c >= 33 {
				leftKey, delta = c-33, deltaRight
			}

			left, okLeft := blocks[leftKey]
			top, okTop := blocks[topKey]
			if !okLeft || !okTop {
				continue
			}
			buf.Set(c, r, pixbuf.Vec1{searchCode(delta(left, top))})
		}
	}
	return &Search{buf: buf}
}
