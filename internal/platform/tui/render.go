package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetrotime/internal/core"
)

// upperHalf paints the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = "▀"

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// styleCache builds each lipgloss style once per frame.
type styleCache struct {
	r      *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

func (c *styleCache) get(cc cellColors) lipgloss.Style {
	if s, ok := c.styles[cc]; ok {
		return s
	}
	s := c.r.NewStyle().Background(lipgloss.Color(cc.bottom.Hex()))
	if cc.top != cc.bottom {
		s = s.Foreground(lipgloss.Color(cc.top.Hex()))
	}
	c.styles[cc] = s
	return s
}

// RenderRows converts a canvas to terminal lines, two pixel rows per line.
// An odd last pixel row is paired with background.
// Adjacent cells with the same colors are grouped to minimize ANSI escape sequences.
func RenderRows(r *lipgloss.Renderer, c *core.Canvas, background core.Color) []string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cache := &styleCache{r: r, styles: make(map[cellColors]lipgloss.Style)}

	pixel := func(x, y int) core.Color {
		if col, ok := c.Get(x, y); ok {
			return col
		}
		return background
	}

	rows := make([]string, 0, (c.Height()+1)/2)
	for y := 0; y < c.Height(); y += 2 {
		var sb strings.Builder
		x := 0
		for x < c.Width() {
			start := cellColors{top: pixel(x, y), bottom: pixel(x, y+1)}

			// Collect consecutive cells with the same colors
			n := 0
			for x < c.Width() && (cellColors{top: pixel(x, y), bottom: pixel(x, y+1)}) == start {
				n++
				x++
			}

			glyph := upperHalf
			if start.top == start.bottom {
				glyph = " "
			}
			sb.WriteString(cache.get(start).Render(strings.Repeat(glyph, n)))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// RenderCanvas converts a canvas to a styled string for display.
func RenderCanvas(r *lipgloss.Renderer, c *core.Canvas, background core.Color) string {
	return strings.Join(RenderRows(r, c, background), "\n")
}
