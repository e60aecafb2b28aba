// Package animator drives timed offset transitions.
package animator

import (
	"math"
	"time"
)

const viscousFluidScale = 8.0

var viscousFluidNormalize = 1.0 / viscousFluid(1.0)

// viscousFluid is a fast start with an exponential tail, reaching 1 at x=1.
func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		x -= 1.0 - math.Exp(-x)
	} else {
		start := 0.36787944117 // 1/e == viscousFluid(1)
		x = 1.0 - math.Exp(1.0-x)
		x = start + x*(1.0-start)
	}
	return x
}

// Interpolator maps elapsed fraction [0,1] to progress [0,1]. It must be
// monotonic and return 1 for an input of 1.
type Interpolator func(float64) float64

// ViscousFluid is the default interpolator.
func ViscousFluid(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return viscousFluidNormalize * viscousFluid(x)
}

// Linear is a constant-speed interpolator.
func Linear(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// Scroller animates a single integer offset from a start value by a delta
// over a fixed duration. Starting a new transition replaces the previous one.
type Scroller struct {
	interp   Interpolator
	start    int
	delta    int
	current  int
	began    time.Time
	duration time.Duration
	finished bool
}

// New returns a finished scroller using interp, or ViscousFluid when nil.
func New(interp Interpolator) *Scroller {
	if interp == nil {
		interp = ViscousFluid
	}
	return &Scroller{interp: interp, finished: true}
}

// Start begins a transition from `from` to `from+delta`. A zero or negative
// duration completes on the next Step.
func (s *Scroller) Start(from, delta int, d time.Duration, now time.Time) {
	s.start = from
	s.delta = delta
	s.current = from
	s.began = now
	s.duration = d
	s.finished = false
}

// Step samples the transition at now. done is true once the returned offset
// is the final one; later Steps keep returning it.
func (s *Scroller) Step(now time.Time) (offset int, done bool) {
	if s.finished {
		return s.current, true
	}

	elapsed := now.Sub(s.began)
	if s.duration <= 0 || elapsed >= s.duration {
		s.current = s.start + s.delta
		s.finished = true
		return s.current, true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	frac := float64(elapsed) / float64(s.duration)
	s.current = s.start + int(math.Round(s.interp(frac)*float64(s.delta)))
	return s.current, false
}

// Abort stops the transition where it is. The offset last returned by Step
// stays the current one.
func (s *Scroller) Abort() {
	s.finished = true
}

// Finished reports whether no transition is in flight.
func (s *Scroller) Finished() bool {
	return s.finished
}

// Final returns the offset the current (or last) transition converges to.
func (s *Scroller) Final() int {
	return s.start + s.delta
}
