// Package velocity estimates pointer velocity from the movement recorded
// during a single pointer session.
package velocity

import (
	"time"
)

// Sample is one recorded pointer position.
type Sample struct {
	X, Y float64
	At   time.Time
}

// Tracker fits a straight line through every sample recorded since the last
// Reset and reports its slope. Unlike a fixed-horizon tracker it keeps the
// whole session, so a long slow drag ending in a short jerk reads as slow.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	samples  []Sample
	released bool
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{samples: make([]Sample, 0, 32)}
}

// Add records a position.
func (t *Tracker) Add(s Sample) {
	if t.released {
		return
	}
	t.samples = append(t.samples, s)
}

// Len returns the number of samples recorded since the last Reset.
func (t *Tracker) Len() int {
	return len(t.samples)
}

// Velocity returns the horizontal and vertical velocity in units per second.
// Fewer than two samples, or samples that all share one timestamp, yield zero.
func (t *Tracker) Velocity() (vx, vy float64) {
	n := len(t.samples)
	if n < 2 {
		return 0, 0
	}

	origin := t.samples[0].At
	var sumT, sumTT, sumX, sumTX, sumY, sumTY float64
	for _, s := range t.samples {
		ts := s.At.Sub(origin).Seconds()
		sumT += ts
		sumTT += ts * ts
		sumX += s.X
		sumTX += ts * s.X
		sumY += s.Y
		sumTY += ts * s.Y
	}

	fn := float64(n)
	denom := fn*sumTT - sumT*sumT
	if denom <= 1e-12 {
		return 0, 0
	}
	vx = (fn*sumTX - sumT*sumX) / denom
	vy = (fn*sumTY - sumT*sumY) / denom
	return vx, vy
}

// Reset forgets every sample but keeps the tracker usable.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Release frees the sample buffer. A released tracker ignores new samples
// and always reports zero velocity.
func (t *Tracker) Release() {
	t.samples = nil
	t.released = true
}

// Released reports whether Release has been called.
func (t *Tracker) Released() bool {
	return t.released
}
