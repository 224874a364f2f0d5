package tetromino

import (
	"slices"

	"github.com/vovakirdan/tetrotime/internal/core"
)

// Tetromino is a live piece on a board.
type Tetromino struct {
	Shape    Shape
	Rotation Rotation
	X, Y     int // anchor position
	Color    core.Color
	Fall     FallState
}

// Board owns a set of live pieces that fall toward a common stop row.
type Board struct {
	pieces     []Tetromino
	stopRow    int
	margin     int
	background core.Color
}

// NewBoard creates an empty board whose pieces come to rest when their anchor
// reaches stopRow.
func NewBoard(stopRow int, cfg Config) *Board {
	return &Board{
		pieces:     make([]Tetromino, 0, 16),
		stopRow:    stopRow,
		margin:     cfg.RemovalMargin,
		background: cfg.Background,
	}
}

// StopRow returns the row at which entering pieces start holding.
func (b *Board) StopRow() int {
	return b.stopRow
}

// AddTetromino places a new entering piece with its anchor at (x, y).
func (b *Board) AddTetromino(x, y int, color core.Color, shape Shape, rotation Rotation) {
	b.pieces = append(b.pieces, Tetromino{
		Shape:    shape,
		Rotation: rotation,
		X:        x,
		Y:        y,
		Color:    color,
		Fall:     Entering,
	})
}

// Update advances every piece by one tick.
//
// Pieces are processed in insertion order and all test against the same
// canvas snapshot, so a piece never sees where another piece moved during
// this tick. Pieces that fell past the canvas bottom plus the removal margin
// are dropped afterwards, whatever their state.
func (b *Board) Update(canvas Occupancy) {
	for i := range b.pieces {
		t := &b.pieces[i]
		if t.Fall != Holding && !WouldCollide(*t, canvas, b.background) {
			t.Y++
		}
		if t.Y == b.stopRow && t.Fall != Exiting {
			t.Fall = Holding
		}
	}

	limit := canvas.Height() + b.margin
	b.pieces = slices.DeleteFunc(b.pieces, func(t Tetromino) bool {
		return t.Y > limit
	})
}

// Render paints every piece at its anchor, in insertion order.
func (b *Board) Render(dst Surface) {
	for _, t := range b.pieces {
		for _, r := range Lookup(t.Shape, t.Rotation).Rects {
			dst.FilledRect(t.X+r.X, t.Y+r.Y, r.W, r.H, t.Color)
		}
	}
}

// InitiateFallOut switches every live piece to Exiting.
func (b *Board) InitiateFallOut() {
	for i := range b.pieces {
		b.pieces[i].Fall = Exiting
	}
}

// Len returns the number of live pieces.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Pieces returns a copy of the live pieces in insertion order.
func (b *Board) Pieces() []Tetromino {
	return slices.Clone(b.pieces)
}
