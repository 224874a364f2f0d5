package core

import (
	"testing"
)

var red = RGB(255, 0, 0)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(80, 48)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 48 {
		t.Errorf("Height() = %d, expected 48", c.Height())
	}

	// A fresh canvas is black everywhere
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if !c.IsEmptyOrColor(x, y, Black) {
				t.Fatalf("New canvas should be black, pixel (%d, %d) is not", x, y)
			}
		}
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, red)
	if got, ok := c.Get(5, 5); !ok || got != red {
		t.Errorf("Get(5, 5) = %v, %v; expected %v, true", got, ok, red)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, red)
	c.Set(100, 0, red)
	c.Set(0, -1, red)
	c.Set(0, 100, red)

	if _, ok := c.Get(-1, 0); ok {
		t.Error("Out of bounds Get should report ok=false")
	}
	if _, ok := c.Get(0, 10); ok {
		t.Error("Out of bounds Get should report ok=false")
	}
}

func TestCanvasIsEmptyOrColor(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(1, 1, red)

	tests := []struct {
		name     string
		x, y     int
		color    Color
		expected bool
	}{
		{"background pixel", 0, 0, Black, true},
		{"painted pixel against background", 1, 1, Black, false},
		{"painted pixel against its own color", 1, 1, red, true},
		{"left of canvas", -1, 0, Black, false},
		{"right of canvas", 4, 0, Black, false},
		{"above canvas", 0, -1, Black, false},
		{"below canvas", 0, 4, Black, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsEmptyOrColor(tc.x, tc.y, tc.color); got != tc.expected {
				t.Errorf("IsEmptyOrColor(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(6, 6)
	c.FilledRect(0, 0, 6, 6, red)

	blue := RGB(0, 0, 255)
	c.Clear(blue)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if !c.IsEmptyOrColor(x, y, blue) {
				t.Errorf("After Clear, expected blue at (%d, %d)", x, y)
			}
		}
	}
}

func TestCanvasFilledRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FilledRect(2, 2, 3, 3, red)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if !c.IsEmptyOrColor(x, y, red) {
				t.Errorf("FilledRect: expected red at (%d, %d)", x, y)
			}
		}
	}

	// Check outside is still background
	if !c.IsEmptyOrColor(1, 1, Black) {
		t.Error("FilledRect should not affect outside area")
	}
	if !c.IsEmptyOrColor(5, 5, Black) {
		t.Error("FilledRect should not affect outside area")
	}
}

func TestCanvasFilledRectClipping(t *testing.T) {
	c := NewCanvas(4, 4)

	// Pieces spawn above the canvas; only their visible part is painted
	c.FilledRect(1, -3, 2, 4, red)

	want := []string{
		".##.",
		"....",
		"....",
		"....",
	}
	got := c.Mask(Black)
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, expected %q", y, got[y], want[y])
		}
	}

	// Entirely off-canvas rectangles are a no-op
	c.FilledRect(-10, -10, 2, 2, red)
	c.FilledRect(10, 10, 2, 2, red)
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, red)
	c.Set(2, 1, red)

	expected := "#..\n..#"
	if got := c.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Set(1, 1, red)
	c.Set(8, 8, red)

	// Resize smaller - should preserve top-left content
	c.Resize(5, 4)
	if c.Width() != 5 || c.Height() != 4 {
		t.Errorf("After resize, dimensions should be 5x4, got %dx%d", c.Width(), c.Height())
	}
	if !c.IsEmptyOrColor(1, 1, red) {
		t.Error("Content should be preserved after shrinking")
	}

	// Resize larger - new area is black, old content still there
	c.Resize(12, 12)
	if !c.IsEmptyOrColor(1, 1, red) {
		t.Error("Content should be preserved after enlarging")
	}
	if !c.IsEmptyOrColor(8, 8, Black) {
		t.Error("Pixels dropped by shrinking should not come back")
	}
}
