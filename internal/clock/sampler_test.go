package clock

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSamplerInitialSample(t *testing.T) {
	fc := &fakeClock{t: base}
	s := NewSampler(Clock{}, DefaultResampleInterval, fc.Now)

	if got := s.Digits(); got != "140703" {
		t.Errorf("initial digits = %q, expected 140703", got)
	}
}

func TestSamplerRateLimit(t *testing.T) {
	fc := &fakeClock{t: base}
	s := NewSampler(Stopwatch{Start: base}, 5*time.Second, fc.Now)

	fc.Advance(3 * time.Second)
	if got, ok := s.Poll(); ok || got != "000000" {
		t.Errorf("Poll() after 3s = %q, %v; expected stale sample", got, ok)
	}

	// Exactly the interval is not enough
	fc.Advance(2 * time.Second)
	if _, ok := s.Poll(); ok {
		t.Error("Poll() resampled at exactly the interval")
	}

	fc.Advance(time.Millisecond)
	got, ok := s.Poll()
	if !ok || got != "000005" {
		t.Errorf("Poll() after 5.001s = %q, %v; expected fresh 000005", got, ok)
	}

	// The window restarts from the new sample
	fc.Advance(4 * time.Second)
	if _, ok := s.Poll(); ok {
		t.Error("Poll() resampled inside the new window")
	}
}

func TestSamplerResample(t *testing.T) {
	fc := &fakeClock{t: base}
	s := NewSampler(Clock{}, time.Hour, fc.Now)

	fc.Advance(time.Second)
	if got := s.Resample(); got != "140704" {
		t.Errorf("Resample() = %q, expected 140704", got)
	}
	if s.Mode().String() != "clock" {
		t.Errorf("Mode() = %s, expected clock", s.Mode())
	}
}
