package core

import (
	"strings"
)

// Canvas is a 2D pixel buffer the clock is drawn into.
// Every pixel holds a color; a pixel is "empty" when it holds the background
// color it was last cleared with. Backends present the canvas, the simulation
// reads it back as its occupancy snapshot.
type Canvas struct {
	width  int
	height int
	pixels [][]Color
}

// NewCanvas creates a new canvas with the given dimensions, cleared to black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	c.allocate()
	return c
}

// allocate creates the underlying pixel storage.
func (c *Canvas) allocate() {
	c.pixels = make([][]Color, c.height)
	for y := range c.pixels {
		c.pixels[y] = make([]Color, c.width)
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the drawable area as a rectangle.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == c.width && height == c.height {
		return
	}

	old := c.pixels
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(c.pixels[y][:copyW], old[y][:copyW])
	}
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(color Color) {
	for y := range c.pixels {
		row := c.pixels[y]
		for x := range row {
			row[x] = color
		}
	}
}

// Set paints a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, color Color) {
	if !c.Bounds().Contains(x, y) {
		return
	}
	c.pixels[y][x] = color
}

// Get returns the pixel at the given position.
// The second return value is false for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) (Color, bool) {
	if !c.Bounds().Contains(x, y) {
		return Color{}, false
	}
	return c.pixels[y][x], true
}

// IsEmptyOrColor reports whether the pixel at (x, y) holds the given color.
// Coordinates outside the canvas are never empty.
func (c *Canvas) IsEmptyOrColor(x, y int, color Color) bool {
	got, ok := c.Get(x, y)
	return ok && got == color
}

// FilledRect paints a w*h rectangle with its top-left corner at (x, y).
// The rectangle is clipped to the canvas.
func (c *Canvas) FilledRect(x, y, w, h int, color Color) {
	r := NewRect(x, y, w, h).Intersection(c.Bounds())
	for py := r.Y; py < r.Bottom(); py++ {
		row := c.pixels[py]
		for px := r.X; px < r.Right(); px++ {
			row[px] = color
		}
	}
}

// Mask returns one string per row with '#' for every pixel that differs from
// background and '.' for every pixel that matches it.
func (c *Canvas) Mask(background Color) []string {
	rows := make([]string, c.height)
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		sb.Reset()
		sb.Grow(c.width)
		for x := 0; x < c.width; x++ {
			if c.pixels[y][x] == background {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String converts the canvas to a '#'/'.' picture against a black background.
// Each row is joined with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Mask(Black), "\n")
}
