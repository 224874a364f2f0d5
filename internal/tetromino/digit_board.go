package tetromino

import "github.com/vovakirdan/tetrotime/internal/core"

// Descriptor is one scripted spawn: which piece to drop and where, relative to
// the digit's left edge.
type Descriptor struct {
	Shape    Shape
	Rotation Rotation
	DX       int
}

// Catalog provides the spawn script for each digit 0-9.
// Scripts are read-only; the pieces of one script must come to rest on
// disjoint pixels.
type Catalog interface {
	Sequence(digit int) []Descriptor
}

// ColorSource hands out the color of each newly spawned piece.
type ColorSource interface {
	Next() core.Color
}

// DigitBoard assembles one digit glyph by spawning its scripted pieces into a
// board, one every SpawnDelay+1 ticks.
type DigitBoard struct {
	board      *Board
	x          int
	digit      int
	script     []Descriptor
	cursor     int
	sinceSpawn int
	spawnDelay int
	catalog    Catalog
	colors     ColorSource
}

// NewDigitBoard creates a digit board whose glyph's left edge is at x and
// whose bottom rests on stopRow. Assembly of digit starts on the first
// updates.
func NewDigitBoard(x, stopRow, digit int, catalog Catalog, colors ColorSource, cfg Config) *DigitBoard {
	return &DigitBoard{
		board:      NewBoard(stopRow, cfg),
		x:          x,
		digit:      digit,
		script:     catalog.Sequence(digit),
		spawnDelay: cfg.SpawnDelay,
		catalog:    catalog,
		colors:     colors,
	}
}

// Digit returns the digit currently being shown.
func (d *DigitBoard) Digit() int {
	return d.digit
}

// Board exposes the underlying board.
func (d *DigitBoard) Board() *Board {
	return d.board
}

// Cursor returns the index of the next descriptor to spawn.
func (d *DigitBoard) Cursor() int {
	return d.cursor
}

// Assembled reports whether every piece of the current script has spawned.
func (d *DigitBoard) Assembled() bool {
	return d.cursor >= len(d.script)
}

// SetColors replaces the color source used for future spawns.
func (d *DigitBoard) SetColors(colors ColorSource) {
	d.colors = colors
}

// Update spawns the next scripted piece if the spawn delay has passed, then
// advances the board one tick.
func (d *DigitBoard) Update(canvas Occupancy) {
	if d.cursor < len(d.script) && d.sinceSpawn > d.spawnDelay {
		desc := d.script[d.cursor]
		d.board.AddTetromino(d.x+desc.DX, 0, d.colors.Next(), desc.Shape, desc.Rotation)
		d.cursor++
		d.sinceSpawn = 0
	}

	d.board.Update(canvas)
	d.sinceSpawn++
}

// Render paints the board's pieces.
func (d *DigitBoard) Render(dst Surface) {
	d.board.Render(dst)
}

// SetDigit retires the current glyph and restarts assembly with digit's
// script.
func (d *DigitBoard) SetDigit(digit int) {
	d.board.InitiateFallOut()
	d.digit = digit
	d.script = d.catalog.Sequence(digit)
	d.cursor = 0
	d.sinceSpawn = 0
}
