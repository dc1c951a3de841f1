package smaa

import (
	"github.com/gogpu/smaa/pixbuf"
	"github.com/gogpu/smaa/tables"
)

// area returns the coverage of an orthogonal line whose ends are at
// distances dist (already square-rooted) with crossing edges e1 and e2.
// offset selects the sub-pixel sub-table.
func (p *weightPass) area(dist pixbuf.Vec2, e1, e2, offset float32) pixbuf.Vec2 {
	tc := pixbuf.Vec2{e1, e2}.Scale(4).Round().Scale(tables.AreaMaxDistance).Add(dist)
	tc[1] += tables.AreaSubsampleRows * offset
	return p.areaTable.Lookup(tc[0], tc[1])
}

// areaDiag is area for diagonal lines. Diagonal patterns live in the right
// half of the table.
func (p *weightPass) areaDiag(dist, e pixbuf.Vec2, offset float32) pixbuf.Vec2 {
	tc := e.Scale(tables.AreaMaxDistanceDiag).Add(dist)
	tc[0] += tables.AreaDiagOffset
	tc[1] += tables.AreaSubsampleRows * offset
	return p.areaTable.Lookup(tc[0], tc[1])
}
