// Package digits holds the glyph catalog: for every decimal digit, the
// ordered list of pieces that assemble it.
package digits

import (
	"errors"
	"fmt"
)

// Glyph dimensions in pixels.
const (
	GlyphWidth  = 6
	GlyphHeight = 10
)

// ErrInvalidDigit is returned when a string contains a non-decimal rune.
var ErrInvalidDigit = errors.New("invalid digit")

// Digit is a decimal digit 0-9.
type Digit uint8

// Int returns the digit's numeric value.
func (d Digit) Int() int {
	return int(d)
}

func (d Digit) String() string {
	return string(rune('0' + d))
}

// Parse converts a string of decimal digits such as "235959".
func Parse(s string) ([]Digit, error) {
	out := make([]Digit, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidDigit, r, i)
		}
		out = append(out, Digit(r-'0'))
	}
	return out, nil
}
