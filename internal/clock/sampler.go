package clock

import "time"

// DefaultResampleInterval is how long the face keeps showing a sample.
const DefaultResampleInterval = 5 * time.Second

// Sampler rate-limits a Mode: the digits only change once more than Interval
// has passed since the previous sample.
type Sampler struct {
	mode     Mode
	interval time.Duration
	now      func() time.Time

	last   time.Time
	digits string
}

// NewSampler takes the first sample immediately. A nil now uses time.Now.
func NewSampler(mode Mode, interval time.Duration, now func() time.Time) *Sampler {
	if now == nil {
		now = time.Now
	}
	s := &Sampler{
		mode:     mode,
		interval: interval,
		now:      now,
	}
	s.Resample()
	return s
}

// Mode returns the sampled mode.
func (s *Sampler) Mode() Mode {
	return s.mode
}

// Digits returns the most recent sample.
func (s *Sampler) Digits() string {
	return s.digits
}

// Resample takes a new sample unconditionally.
func (s *Sampler) Resample() string {
	s.last = s.now()
	s.digits = s.mode.Digits(s.last)
	return s.digits
}

// Poll resamples if the interval has elapsed. It reports whether a new sample
// was taken; the digits may still be unchanged.
func (s *Sampler) Poll() (string, bool) {
	if s.now().Sub(s.last) > s.interval {
		return s.Resample(), true
	}
	return s.digits, false
}
