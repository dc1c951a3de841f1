// Package tables holds the two constant lookup tables the SMAA pipeline
// consults: the area table, which maps an edge pattern and the distances to
// its ends to sub-pixel coverage, and the search table, which encodes how far
// a line search overshot the real end of a line.
//
// The area table is precomputed offline and shipped as data (raw bytes or an
// image). The search table is small enough to generate on the fly with
// GenerateSearch.
package tables

import (
	"errors"

	"github.com/gogpu/smaa/pixbuf"
)

// Table dimensions.
const (
	AreaWidth    = 160
	AreaHeight   = 560
	SearchWidth  = 64
	SearchHeight = 16
)

// Area table layout.
const (
	// AreaMaxDistance is the largest orthogonal distance the table resolves.
	AreaMaxDistance = 16

	// AreaMaxDistanceDiag is the largest diagonal distance the table resolves.
	AreaMaxDistanceDiag = 20

	// AreaSubsampleRows is the height of one sub-pixel offset sub-table.
	AreaSubsampleRows = 80

	// AreaDiagOffset is the x offset of the diagonal half of the table.
	AreaDiagOffset = 80

	// AreaSubsamples is the number of sub-pixel offset sub-tables.
	AreaSubsamples = AreaHeight / AreaSubsampleRows
)

// ErrTableSize is returned when table data does not have the expected
// dimensions.
var ErrTableSize = errors.New("tables: wrong table size")

// Area is the area lookup table. Texels are two-channel coverage values in
// [0, 1]. An Area is immutable and safe for concurrent use.
type Area struct {
	buf *pixbuf.Buffer[pixbuf.Vec2]
}

// Buffer returns the backing buffer. Callers must not modify it.
func (a *Area) Buffer() *pixbuf.Buffer[pixbuf.Vec2] {
	return a.buf
}

// Lookup bilinearly samples the table at pixel coordinate (x, y). Reads
// outside the table return zero coverage.
func (a *Area) Lookup(x, y float32) pixbuf.Vec2 {
	return a.buf.BilinearDefault(x, y)
}

// Search is the search length lookup table. Texels hold one of the codes
// 0, 127/255 and 254/255. A Search is immutable and safe for concurrent use.
type Search struct {
	buf *pixbuf.Buffer[pixbuf.Vec1]
}

// Buffer returns the backing buffer. Callers must not modify it.
func (s *Search) Buffer() *pixbuf.Buffer[pixbuf.Vec1] {
	return s.buf
}

// Lookup bilinearly samples the table at pixel coordinate (x, y).
func (s *Search) Lookup(x, y float32) float32 {
	return s.buf.BilinearDefault(x, y)[0]
}
