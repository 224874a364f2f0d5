package clockface

import "github.com/vovakirdan/tetrotime/internal/digits"

// Horizontal layout of HH:MM:SS in pixels, relative to the face's left edge.
// Digits of a pair are 2 apart; pairs are 6 apart with a colon centered in
// the gap.
var (
	digitOffsets     = [6]int{0, 8, 20, 28, 40, 48}
	separatorOffsets = [2]int{16, 36}
)

// Width is the total width of the face in pixels.
const Width = 48 + digits.GlyphWidth

// Layout holds the absolute positions of every board for one canvas size.
type Layout struct {
	DigitX     [6]int
	SeparatorX [2]int

	// StopRow is the row digit glyphs rest on.
	StopRow int
}

// NewLayout centers the face on a canvas of the given pixel size.
// The face may hang off the canvas on either side when it does not fit.
func NewLayout(width, height int) Layout {
	xStart := (width - Width) / 2

	var l Layout
	for i, off := range digitOffsets {
		l.DigitX[i] = xStart + off
	}
	for i, off := range separatorOffsets {
		l.SeparatorX[i] = xStart + off
	}
	l.StopRow = (height + digits.GlyphHeight) / 2
	return l
}

// colonDot is one O piece of a colon: where it spawns and where it rests,
// relative to the digit stop row.
type colonDot struct {
	startY     int
	stopOffset int
}

// The lower dot starts first; the upper one starts 4 rows higher so both land
// together.
var colonDots = [2]colonDot{
	{startY: 0, stopOffset: -2},
	{startY: -4, stopOffset: -6},
}
