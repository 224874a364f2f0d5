// Package clock turns wall-clock time into the six HHMMSS digits shown on the
// face.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDuration is returned by ParseCountdown for malformed input.
var ErrInvalidDuration = errors.New("invalid duration")

// Mode produces the digits displayed at a given instant.
type Mode interface {
	// Digits returns exactly six decimal digits, HHMMSS.
	Digits(now time.Time) string
	String() string
}

// Clock shows the local time of day.
type Clock struct{}

// Digits formats now in its own location.
func (Clock) Digits(now time.Time) string {
	return now.Format("150405")
}

func (Clock) String() string { return "clock" }

// Countdown shows the time remaining until End, then zeros.
type Countdown struct {
	End time.Time
}

// NewCountdown starts a countdown of d at now.
func NewCountdown(now time.Time, d time.Duration) Countdown {
	return Countdown{End: now.Add(d)}
}

func (c Countdown) Digits(now time.Time) string {
	remaining := c.End.Sub(now)
	if remaining < 0 {
		return "000000"
	}
	return formatDuration(remaining)
}

func (Countdown) String() string { return "countdown" }

// Stopwatch shows the time elapsed since Start.
type Stopwatch struct {
	Start time.Time
}

func (s Stopwatch) Digits(now time.Time) string {
	elapsed := now.Sub(s.Start)
	if elapsed < 0 {
		elapsed = 0
	}
	return formatDuration(elapsed)
}

func (Stopwatch) String() string { return "stopwatch" }

// formatDuration renders d as HHMMSS, truncating to whole seconds.
// Hours wrap at 100 so the result always has six digits.
func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	hours := (total / 3600) % 100
	minutes := (total / 60) % 60
	seconds := total % 60
	return fmt.Sprintf("%02d%02d%02d", hours, minutes, seconds)
}

// ParseCountdown parses a countdown length written as HH:MM:SS or HHMMSS.
// Hours range over 0-23, minutes and seconds over 0-59.
func ParseCountdown(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	layouts := []string{"15:04:05", "150405"}
	for _, layout := range layouts {
		if len(s) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second
		return d, nil
	}
	return 0, fmt.Errorf("clock: %w %q: expected HH:MM:SS or HHMMSS", ErrInvalidDuration, s)
}
