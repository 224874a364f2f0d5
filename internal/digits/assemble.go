package digits

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tetrotime/internal/core"
	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

// maxAssembleTicks bounds Assemble for scripts that never come to rest.
const maxAssembleTicks = 2000

// solidColor paints every piece the same color.
type solidColor core.Color

func (s solidColor) Next() core.Color { return core.Color(s) }

// Assemble drops digit's script onto an empty glyph-sized canvas and runs the
// animation until every piece has spawned and nothing moves any more.
// The returned canvas is GlyphWidth x GlyphHeight, painted with color on
// cfg.Background.
func Assemble(cat tetromino.Catalog, digit int, color core.Color, cfg tetromino.Config) (*core.Canvas, error) {
	if len(cat.Sequence(digit)) == 0 {
		return nil, fmt.Errorf("digits: no script for %d", digit)
	}

	canvas := core.NewCanvas(GlyphWidth, GlyphHeight)
	canvas.Clear(cfg.Background)
	board := tetromino.NewDigitBoard(0, GlyphHeight, digit, cat, solidColor(color), cfg)

	var prev []tetromino.Tetromino
	for tick := 0; tick < maxAssembleTicks; tick++ {
		board.Update(canvas)
		canvas.Clear(cfg.Background)
		board.Render(canvas)

		pieces := board.Board().Pieces()
		if board.Assembled() && slices.Equal(pieces, prev) {
			return canvas, nil
		}
		prev = pieces
	}
	return nil, fmt.Errorf("digits: %d did not settle after %d ticks", digit, maxAssembleTicks)
}
