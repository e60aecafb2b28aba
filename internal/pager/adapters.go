package pager

import (
	"swipepager/internal/animator"
	"swipepager/internal/velocity"
)

// trackerEstimator adapts a velocity.Tracker to VelocityEstimator.
type trackerEstimator struct {
	t *velocity.Tracker
}

// NewTrackerEstimator returns the default least-squares estimator.
func NewTrackerEstimator() VelocityEstimator {
	return &trackerEstimator{t: velocity.New()}
}

func (e *trackerEstimator) AddSample(ev PointerEvent) {
	e.t.Add(velocity.Sample{X: float64(ev.X), Y: float64(ev.Y), At: ev.At})
}

func (e *trackerEstimator) Velocity() float64 {
	vx, _ := e.t.Velocity()
	return vx
}

func (e *trackerEstimator) Reset()   { e.t.Reset() }
func (e *trackerEstimator) Release() { e.t.Release() }

// NewScroller returns the default viscous-fluid animator.
func NewScroller() OffsetAnimator {
	return animator.New(animator.ViscousFluid)
}
