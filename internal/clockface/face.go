// Package clockface arranges six digit boards and two colons into an
// HH:MM:SS clock and keeps them in step with a time source.
package clockface

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetrotime/internal/clock"
	"github.com/vovakirdan/tetrotime/internal/digits"
	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

// Face is a complete animated clock. It is driven by one Update and one
// Render per frame and is not safe for concurrent use.
type Face struct {
	sampler *clock.Sampler
	catalog tetromino.Catalog
	colors  tetromino.ColorSource
	cfg     tetromino.Config
	logger  *log.Logger

	layout     Layout
	digits     []digits.Digit
	boards     []*tetromino.DigitBoard
	separators []*tetromino.Board
}

// Options configures a Face.
type Options struct {
	Sampler *clock.Sampler
	Catalog tetromino.Catalog
	Colors  tetromino.ColorSource
	Config  tetromino.Config
	Logger  *log.Logger // nil discards
}

// New creates a face laid out for a width x height pixel canvas.
func New(opts Options, width, height int) *Face {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := &Face{
		sampler: opts.Sampler,
		catalog: opts.Catalog,
		colors:  opts.Colors,
		cfg:     opts.Config,
		logger:  logger,
	}
	f.Resize(width, height)
	return f
}

// Resize discards every live piece and rebuilds the boards for the new
// canvas size from a fresh time sample.
func (f *Face) Resize(width, height int) {
	f.layout = NewLayout(width, height)
	f.digits = f.parse(f.sampler.Resample())

	f.boards = make([]*tetromino.DigitBoard, len(f.digits))
	for i, d := range f.digits {
		f.boards[i] = tetromino.NewDigitBoard(f.layout.DigitX[i], f.layout.StopRow, d.Int(), f.catalog, f.colors, f.cfg)
	}

	color := f.colors.Next()
	f.separators = f.separators[:0]
	for _, x := range f.layout.SeparatorX {
		for _, dot := range colonDots {
			b := tetromino.NewBoard(f.layout.StopRow+dot.stopOffset, f.cfg)
			b.AddTetromino(x, dot.startY, color, tetromino.ShapeO, tetromino.Rotation0)
			f.separators = append(f.separators, b)
		}
	}

	f.logger.Debug("face resized", "width", width, "height", height, "stop", f.layout.StopRow, "digits", f.sampler.Digits())
}

// Update advances every board by one tick against the previous frame, then
// polls the time source and retargets the boards whose digit changed.
func (f *Face) Update(canvas tetromino.Occupancy) {
	for _, b := range f.boards {
		b.Update(canvas)
	}
	for _, b := range f.separators {
		b.Update(canvas)
	}

	sample, ok := f.sampler.Poll()
	if !ok {
		return
	}
	next := f.parse(sample)
	changed := 0
	for i, d := range next {
		if d != f.digits[i] {
			f.boards[i].SetDigit(d.Int())
			changed++
		}
	}
	if changed > 0 {
		f.logger.Debug("time changed", "from", digitString(f.digits), "to", digitString(next), "boards", changed)
	}
	f.digits = next
}

// Render paints all boards.
func (f *Face) Render(dst tetromino.Surface) {
	for _, b := range f.boards {
		b.Render(dst)
	}
	for _, b := range f.separators {
		b.Render(dst)
	}
}

// SetColors switches the color source. Pieces already spawned keep their
// color.
func (f *Face) SetColors(colors tetromino.ColorSource) {
	f.colors = colors
	for _, b := range f.boards {
		b.SetColors(colors)
	}
}

// Digits returns the digits currently targeted by the boards.
func (f *Face) Digits() string {
	return digitString(f.digits)
}

// Layout returns the current board positions.
func (f *Face) Layout() Layout {
	return f.layout
}

// Boards returns the digit boards, left to right.
func (f *Face) Boards() []*tetromino.DigitBoard {
	return f.boards
}

// parse converts a sample to six digits. A malformed sample is logged and
// shown as zeros.
func (f *Face) parse(sample string) []digits.Digit {
	ds, err := digits.Parse(sample)
	if err != nil || len(ds) != len(digitOffsets) {
		f.logger.Error("bad time sample", "sample", sample, "mode", f.sampler.Mode(), "error", err)
		return make([]digits.Digit, len(digitOffsets))
	}
	return ds
}

func digitString(ds []digits.Digit) string {
	b := make([]byte, len(ds))
	for i, d := range ds {
		b[i] = byte('0' + d)
	}
	return string(b)
}
