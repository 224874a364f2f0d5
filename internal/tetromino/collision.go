package tetromino

import "github.com/vovakirdan/tetrotime/internal/core"

// Occupancy is the read side of the canvas the simulation tests against.
type Occupancy interface {
	Width() int
	Height() int
	// IsEmptyOrColor reports whether (x, y) holds the given color.
	// Coordinates outside the canvas must report false.
	IsEmptyOrColor(x, y int, color core.Color) bool
}

// Surface is the write side of the canvas pieces are painted onto.
type Surface interface {
	FilledRect(x, y, w, h int, color core.Color)
}

// WouldCollide reports whether the piece is blocked from descending one row.
//
// Every descent pixel of the piece's footprint is checked against the
// occupancy snapshot: a pixel that is not background, or lies left or right of
// the canvas, blocks. Rows above the canvas are the spawn lane and rows below
// it the exit lane; both are always free, so pieces can enter and leave.
//
// Other in-flight pieces are only seen through the snapshot. Keeping
// concurrently falling pieces apart is up to the animation catalog.
func WouldCollide(t Tetromino, occ Occupancy, background core.Color) bool {
	fp := Lookup(t.Shape, t.Rotation)
	height := occ.Height()
	for _, o := range fp.Descent {
		x, y := t.X+o.DX, t.Y+o.DY
		if y < 0 || y >= height {
			continue
		}
		if !occ.IsEmptyOrColor(x, y, background) {
			return true
		}
	}
	return false
}
