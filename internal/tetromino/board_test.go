package tetromino

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tetrotime/internal/core"
)

var (
	red  = core.RGB(255, 0, 0)
	blue = core.RGB(0, 0, 255)
)

// animated is anything driven by the clear/update/render frame loop.
type animated interface {
	Update(Occupancy)
	Render(Surface)
}

// frame runs one tick the way the clock face does: update against the
// previous frame, then repaint.
func frame(a animated, c *core.Canvas) {
	a.Update(c)
	c.Clear(core.Black)
	a.Render(c)
}

func TestBoardDropsToStopRow(t *testing.T) {
	c := core.NewCanvas(10, 20)
	b := NewBoard(20, DefaultConfig())
	b.AddTetromino(0, 0, red, ShapeO, Rotation0)

	frame(b, c)
	p := b.Pieces()[0]
	if p.Y != 1 || p.Fall != Entering {
		t.Fatalf("after one tick got y=%d %s, expected y=1 entering", p.Y, p.Fall)
	}

	for i := 1; i < 19; i++ {
		frame(b, c)
	}
	if p := b.Pieces()[0]; p.Y != 19 || p.Fall != Entering {
		t.Fatalf("after 19 ticks got y=%d %s, expected y=19 entering", p.Y, p.Fall)
	}

	frame(b, c)
	if p := b.Pieces()[0]; p.Y != 20 || p.Fall != Holding {
		t.Fatalf("after 20 ticks got y=%d %s, expected y=20 holding", p.Y, p.Fall)
	}

	for i := 0; i < 10; i++ {
		frame(b, c)
	}
	if p := b.Pieces()[0]; p.Y != 20 || p.Fall != Holding {
		t.Errorf("holding piece moved to y=%d %s", p.Y, p.Fall)
	}

	mask := c.Mask(core.Black)
	if mask[18][:2] != "##" || mask[19][:2] != "##" || mask[17][:2] != ".." {
		t.Errorf("unexpected resting pixels:\n%s", c)
	}
}

func TestBoardHoldingIgnoresSupport(t *testing.T) {
	c := core.NewCanvas(4, 6)
	b := NewBoard(3, DefaultConfig())
	b.AddTetromino(0, 0, red, ShapeO, Rotation0)
	for i := 0; i < 3; i++ {
		frame(b, c)
	}
	if p := b.Pieces()[0]; p.Fall != Holding {
		t.Fatalf("expected holding at stop row, got y=%d %s", p.Y, p.Fall)
	}

	// Nothing below the piece, it still does not move
	c.Clear(core.Black)
	for i := 0; i < 5; i++ {
		b.Update(c)
	}
	if p := b.Pieces()[0]; p.Y != 3 {
		t.Errorf("holding piece fell to y=%d", p.Y)
	}
}

func TestBoardStacking(t *testing.T) {
	c := core.NewCanvas(6, 20)
	b := NewBoard(20, DefaultConfig())
	b.AddTetromino(0, 0, red, ShapeO, Rotation0)
	for i := 0; i < 30; i++ {
		frame(b, c)
	}

	b.AddTetromino(0, 0, blue, ShapeO, Rotation0)
	for i := 0; i < 40; i++ {
		frame(b, c)
	}

	pieces := b.Pieces()
	if pieces[0].Y != 20 || pieces[0].Fall != Holding {
		t.Errorf("bottom piece at y=%d %s, expected y=20 holding", pieces[0].Y, pieces[0].Fall)
	}
	// Resting on another piece is not the stop row
	if pieces[1].Y != 18 || pieces[1].Fall != Entering {
		t.Errorf("top piece at y=%d %s, expected y=18 entering", pieces[1].Y, pieces[1].Fall)
	}

	if got, _ := c.Get(0, 16); got != blue {
		t.Errorf("pixel (0,16) = %s, expected %s", got, blue)
	}
	if got, _ := c.Get(1, 19); got != red {
		t.Errorf("pixel (1,19) = %s, expected %s", got, red)
	}
}

func TestBoardWallsBlockDescent(t *testing.T) {
	c := core.NewCanvas(6, 10)
	b := NewBoard(9, DefaultConfig())
	// The J's top bar reaches one column left of the canvas
	b.AddTetromino(1, 0, red, ShapeJ, Rotation0)

	for i := 0; i < 5; i++ {
		frame(b, c)
	}
	if p := b.Pieces()[0]; p.Y != 1 || p.Fall != Entering {
		t.Errorf("piece at y=%d %s, expected stuck at y=1", p.Y, p.Fall)
	}
}

func TestBoardDescentIsMonotone(t *testing.T) {
	c := core.NewCanvas(8, 16)
	b := NewBoard(16, DefaultConfig())
	b.AddTetromino(0, 0, red, ShapeI, Rotation0)
	b.AddTetromino(0, -3, blue, ShapeL, Rotation180)
	b.AddTetromino(4, 0, red, ShapeT, Rotation180)

	prev := []int{0, -3, 0}
	for tick := 0; tick < 40; tick++ {
		if tick == 25 {
			b.InitiateFallOut()
		}
		frame(b, c)
		pieces := b.Pieces()
		if len(pieces) != len(prev) {
			// removal has started, indices no longer line up
			break
		}
		for i, p := range pieces {
			if p.Y < prev[i] || p.Y > prev[i]+1 {
				t.Fatalf("tick %d: piece %d moved from y=%d to y=%d", tick, i, prev[i], p.Y)
			}
			prev[i] = p.Y
		}
	}
}

func TestBoardFallOutRemovesEverything(t *testing.T) {
	cfg := DefaultConfig()
	c := core.NewCanvas(10, 20)
	b := NewBoard(20, cfg)
	b.AddTetromino(0, 0, red, ShapeO, Rotation0)
	for i := 0; i < 20; i++ {
		frame(b, c)
	}

	b.InitiateFallOut()
	if p := b.Pieces()[0]; p.Fall != Exiting {
		t.Fatalf("expected exiting after fall out, got %s", p.Fall)
	}

	// A piece is dropped once it exceeds height+margin, so it needs
	// height+margin+1-y ticks.
	ticks := c.Height() + cfg.RemovalMargin + 1 - 20
	for i := 0; i < ticks-1; i++ {
		frame(b, c)
	}
	if b.Len() != 1 {
		t.Fatalf("piece removed early, after %d ticks", ticks-1)
	}
	frame(b, c)
	if b.Len() != 0 {
		t.Fatalf("piece still alive after %d ticks: %+v", ticks, b.Pieces())
	}
	if c.String() != emptyCanvas(10, 20) {
		t.Errorf("canvas not empty after fall out:\n%s", c)
	}
}

func TestBoardFallOutStack(t *testing.T) {
	cfg := DefaultConfig()
	c := core.NewCanvas(6, 12)
	b := NewBoard(12, cfg)
	for i := 0; i < 3; i++ {
		b.AddTetromino(2, 0, red, ShapeO, Rotation0)
		for j := 0; j < 20; j++ {
			frame(b, c)
		}
	}

	b.InitiateFallOut()
	// Each piece waits for the one below to clear, so allow a few ticks per
	// piece on top of the distance itself.
	for i := 0; i < 30 && b.Len() > 0; i++ {
		frame(b, c)
	}
	if b.Len() != 0 {
		t.Errorf("expected all pieces removed, %d left", b.Len())
	}
}

func TestBoardExitingPassesStopRow(t *testing.T) {
	c := core.NewCanvas(6, 10)
	b := NewBoard(5, DefaultConfig())
	b.AddTetromino(0, 0, red, ShapeI, Rotation90)
	b.InitiateFallOut()

	for i := 0; i < 14; i++ {
		frame(b, c)
		for _, p := range b.Pieces() {
			if p.Fall != Exiting {
				t.Fatalf("tick %d: exiting piece became %s at y=%d", i, p.Fall, p.Y)
			}
		}
	}
	if b.Len() != 1 {
		t.Fatalf("expected piece alive at y=14, got %d pieces", b.Len())
	}
	frame(b, c)
	if b.Len() != 0 {
		t.Errorf("expected piece removed at y=15")
	}
}

func TestBoardRender(t *testing.T) {
	c := core.NewCanvas(5, 4)
	b := NewBoard(3, DefaultConfig())
	b.AddTetromino(1, 3, red, ShapeL, Rotation0)
	b.Render(c)

	want := []string{
		".....",
		".###.",
		".#...",
		".....",
	}
	if got := c.Mask(core.Black); !slices.Equal(got, want) {
		t.Errorf("Render() =\n%s\nexpected\n%s", c, strings.Join(want, "\n"))
	}
}

func TestBoardRenderInsertionOrder(t *testing.T) {
	c := core.NewCanvas(4, 4)
	b := NewBoard(4, DefaultConfig())
	b.AddTetromino(1, 3, red, ShapeO, Rotation0)
	b.AddTetromino(1, 3, blue, ShapeO, Rotation0)
	b.Render(c)

	if got, _ := c.Get(1, 2); got != blue {
		t.Errorf("overlapping pixel = %s, expected later piece's %s", got, blue)
	}
}

func emptyCanvas(w, h int) string {
	return core.NewCanvas(w, h).String()
}
