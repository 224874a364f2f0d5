package tetromino

import (
	"fmt"

	"github.com/vovakirdan/tetrotime/internal/core"
)

// Offset is a pixel position relative to a piece's anchor.
type Offset struct {
	DX, DY int
}

// Footprint describes a shape at one rotation.
// The slices are shared by every piece using the footprint and must not be
// modified.
type Footprint struct {
	// Descent holds, for every column the shape occupies, the pixel directly
	// below that column's lowest filled pixel. The piece may move down one row
	// only if all of them are free.
	Descent []Offset

	// Rects are the fill primitives that paint the shape at its anchor.
	Rects []core.Rect
}

// Cells expands Rects into individual filled pixels.
func (f Footprint) Cells() []Offset {
	cells := make([]Offset, 0, 4)
	for _, r := range f.Rects {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				cells = append(cells, Offset{DX: x, DY: y})
			}
		}
	}
	return cells
}

// geometry is one row of the shape table. A row may serve several rotations
// of a symmetric shape.
type geometry struct {
	shape     Shape
	rotations []Rotation
	descent   []Offset
	rects     []core.Rect
}

func at(dx, dy int) Offset { return Offset{DX: dx, DY: dy} }

func rect(x, y, w, h int) core.Rect { return core.NewRect(x, y, w, h) }

// Shapes are based on the ARS reference orientations. Drawings show the
// filled pixels with the anchor pixel marked '@'.
var geometryTable = []geometry{
	// ###
	// @..
	{ShapeL, []Rotation{Rotation0},
		[]Offset{at(0, 0), at(1, -1), at(2, -1)},
		[]core.Rect{rect(0, -2, 1, 2), rect(1, -2, 2, 1)}},
	// ##
	// .#
	// .@
	{ShapeL, []Rotation{Rotation90},
		[]Offset{at(0, 0), at(-1, -2)},
		[]core.Rect{rect(0, -3, 1, 3), rect(-1, -3, 1, 1)}},
	// ..#
	// @##
	{ShapeL, []Rotation{Rotation180},
		[]Offset{at(0, 0), at(1, 0), at(2, 0)},
		[]core.Rect{rect(0, -1, 3, 1), rect(2, -2, 1, 1)}},
	// #.
	// #.
	// @#
	{ShapeL, []Rotation{Rotation270},
		[]Offset{at(0, 0), at(1, 0)},
		[]core.Rect{rect(0, -3, 1, 3), rect(1, -1, 1, 1)}},

	// ###
	// ..@
	{ShapeJ, []Rotation{Rotation0},
		[]Offset{at(0, 0), at(-1, -1), at(-2, -1)},
		[]core.Rect{rect(-2, -2, 2, 1), rect(0, -2, 1, 2)}},
	// .#
	// .#
	// @#
	{ShapeJ, []Rotation{Rotation90},
		[]Offset{at(0, 0), at(1, 0)},
		[]core.Rect{rect(0, -1, 2, 1), rect(1, -3, 1, 2)}},
	// #..
	// @##
	{ShapeJ, []Rotation{Rotation180},
		[]Offset{at(0, 0), at(1, 0), at(2, 0)},
		[]core.Rect{rect(0, -2, 1, 2), rect(1, -1, 2, 1)}},
	// ##
	// #.
	// @.
	{ShapeJ, []Rotation{Rotation270},
		[]Offset{at(0, 0), at(1, -2)},
		[]core.Rect{rect(0, -3, 1, 3), rect(1, -3, 1, 1)}},

	// ##
	// @#
	{ShapeO, []Rotation{Rotation0, Rotation90, Rotation180, Rotation270},
		[]Offset{at(0, 0), at(1, 0)},
		[]core.Rect{rect(0, -2, 2, 2)}},

	// ###
	// .@.
	{ShapeT, []Rotation{Rotation0},
		[]Offset{at(0, 0), at(1, -1), at(-1, -1)},
		[]core.Rect{rect(-1, -2, 3, 1), rect(0, -1, 1, 1)}},
	// .#
	// ##
	// .@
	{ShapeT, []Rotation{Rotation90},
		[]Offset{at(0, 0), at(-1, -1)},
		[]core.Rect{rect(0, -3, 1, 3), rect(-1, -2, 1, 1)}},
	// .#.
	// @##
	{ShapeT, []Rotation{Rotation180},
		[]Offset{at(0, 0), at(1, 0), at(2, 0)},
		[]core.Rect{rect(0, -1, 3, 1), rect(1, -2, 1, 1)}},
	// #.
	// ##
	// @.
	{ShapeT, []Rotation{Rotation270},
		[]Offset{at(0, 0), at(1, -1)},
		[]core.Rect{rect(0, -3, 1, 3), rect(1, -2, 1, 1)}},

	// @###
	{ShapeI, []Rotation{Rotation0, Rotation180},
		[]Offset{at(0, 0), at(1, 0), at(2, 0), at(3, 0)},
		[]core.Rect{rect(0, -1, 4, 1)}},
	// #
	// #
	// #
	// @
	{ShapeI, []Rotation{Rotation90, Rotation270},
		[]Offset{at(0, 0)},
		[]core.Rect{rect(0, -4, 1, 4)}},

	// .##
	// @#.
	{ShapeS, []Rotation{Rotation0, Rotation180},
		[]Offset{at(0, 0), at(1, 0), at(2, -1)},
		[]core.Rect{rect(0, -1, 2, 1), rect(1, -2, 2, 1)}},
	// #.
	// ##
	// .@
	{ShapeS, []Rotation{Rotation90, Rotation270},
		[]Offset{at(0, 0), at(-1, -1)},
		[]core.Rect{rect(0, -2, 1, 2), rect(-1, -3, 1, 2)}},

	// ##.
	// .@#
	{ShapeZ, []Rotation{Rotation0, Rotation180},
		[]Offset{at(0, 0), at(1, 0), at(-1, -1)},
		[]core.Rect{rect(0, -1, 2, 1), rect(-1, -2, 2, 1)}},
	// .#
	// ##
	// @.
	{ShapeZ, []Rotation{Rotation90, Rotation270},
		[]Offset{at(0, 0), at(1, -1)},
		[]core.Rect{rect(0, -2, 1, 2), rect(1, -3, 1, 2)}},
}

// footprints is the resolved (shape, rotation) lookup built from geometryTable.
var footprints [numShapes][numRotations]*Footprint

func init() {
	for _, g := range geometryTable {
		fp := &Footprint{Descent: g.descent, Rects: g.rects}
		for _, r := range g.rotations {
			if footprints[g.shape][r] != nil {
				panic(fmt.Sprintf("tetromino: duplicate geometry for %s at %s", g.shape, r))
			}
			footprints[g.shape][r] = fp
		}
	}

	for s := Shape(0); s < numShapes; s++ {
		for r := Rotation(0); r < numRotations; r++ {
			if footprints[s][r] == nil {
				panic(fmt.Sprintf("tetromino: missing geometry for %s at %s", s, r))
			}
		}
	}
}

// Lookup returns the footprint of a shape at a rotation.
// The table is total over all 28 combinations; invalid enum values panic.
func Lookup(shape Shape, rotation Rotation) Footprint {
	return *footprints[shape][rotation]
}
