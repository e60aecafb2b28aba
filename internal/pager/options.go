package pager

import (
	"time"

	"pkt.systems/pslog"
)

const (
	// DefaultEdgeOffsetDp is the boundary bounce distance in density-independent units.
	DefaultEdgeOffsetDp = 60
	// DefaultFlingThreshold is the release speed, in px/s, above which a
	// release steps exactly one page.
	DefaultFlingThreshold = 50.0
	// DefaultSettleDuration is the length of every settle transition.
	DefaultSettleDuration = 500 * time.Millisecond
)

// PageChangeFunc is called after each settle decision with the page the
// gesture started on and the page it settles on. from == to is possible.
type PageChangeFunc func(from, to int)

type options struct {
	edgeOffsetDp   float64
	density        float64
	flingThreshold float64
	settle         time.Duration
	now            func() time.Time
	estimator      VelocityEstimator
	animator       OffsetAnimator
	logger         pslog.Logger
	onPageChange   PageChangeFunc
}

// Option configures a Container.
type Option func(*options)

// WithEdgeOffsetDp sets the boundary bounce distance.
func WithEdgeOffsetDp(dp float64) Option {
	return func(o *options) { o.edgeOffsetDp = dp }
}

// WithDensity sets pixels per density-independent unit. It is read once,
// when the container is built.
func WithDensity(d float64) Option {
	return func(o *options) { o.density = d }
}

// WithFlingThreshold sets the release speed that triggers a single-page step.
func WithFlingThreshold(pxPerSec float64) Option {
	return func(o *options) { o.flingThreshold = pxPerSec }
}

// WithSettleDuration sets the settle transition length.
func WithSettleDuration(d time.Duration) Option {
	return func(o *options) { o.settle = d }
}

// WithClock replaces time.Now for transitions started by the container.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithVelocityEstimator replaces the default least-squares estimator.
func WithVelocityEstimator(e VelocityEstimator) Option {
	return func(o *options) { o.estimator = e }
}

// WithAnimator replaces the default viscous-fluid animator.
func WithAnimator(a OffsetAnimator) Option {
	return func(o *options) { o.animator = a }
}

// WithLogger sets the logger for gesture and settle tracing.
func WithLogger(l pslog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPageChangeHandler registers a settle callback.
func WithPageChangeHandler(fn PageChangeFunc) Option {
	return func(o *options) { o.onPageChange = fn }
}
