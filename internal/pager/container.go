package pager

import (
	"context"
	"math"
	"time"

	"pkt.systems/pslog"
)

// Container is a horizontally paginated container. The zero value is not
// usable; build one with New.
type Container struct {
	opts      options
	surface   Surface
	estimator VelocityEstimator
	animator  OffsetAnimator
	logger    pslog.Logger
	now       func() time.Time

	children []Child
	bounds   []Rect // per child, set by Layout; zero for hidden children

	session gestureSession
	paging  pagingState
	anim    scrollAnimation

	scrollX, scrollY     int
	measuredW, measuredH int
	frame                Rect
	contentWidth         int
	focused              bool
	detached             bool
}

// New builds a container that reports scroll changes to surface.
func New(surface Surface, opts ...Option) *Container {
	o := options{
		edgeOffsetDp:   DefaultEdgeOffsetDp,
		density:        1,
		flingThreshold: DefaultFlingThreshold,
		settle:         DefaultSettleDuration,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.estimator == nil {
		o.estimator = NewTrackerEstimator()
	}
	if o.animator == nil {
		o.animator = NewScroller()
	}
	if o.logger == nil {
		o.logger = pslog.Ctx(context.Background())
	}

	c := &Container{
		opts:      o,
		surface:   surface,
		estimator: o.estimator,
		animator:  o.animator,
		logger:    o.logger.With("component", "pager"),
		now:       o.now,
	}
	c.paging.edgeOffset = int(math.Round(o.edgeOffsetDp * o.density))
	c.session.end()
	return c
}

// AddChild appends a page.
func (c *Container) AddChild(ch Child) {
	c.children = append(c.children, ch)
	c.bounds = append(c.bounds, Rect{})
}

// SetChildren replaces every page. Measure and Layout must run again
// before the new pages take part in paging.
func (c *Container) SetChildren(children []Child) {
	c.children = append(c.children[:0:0], children...)
	c.bounds = make([]Rect, len(children))
	c.session.end()
}

// Children returns the pages in presentation order.
func (c *Container) Children() []Child { return c.children }

// ChildBounds returns the bounds assigned to child i by the last Layout.
func (c *Container) ChildBounds(i int) Rect {
	if i < 0 || i >= len(c.bounds) {
		return Rect{}
	}
	return c.bounds[i]
}

// PageCount returns the number of visible pages seen by the last Layout.
func (c *Container) PageCount() int { return c.paging.count }

// CurrentPage returns the page the container is on or settling to.
func (c *Container) CurrentPage() int { return c.paging.current }

// Pitch returns the page width used by paging math.
func (c *Container) Pitch() int { return c.paging.pitch }

// EdgeOffset returns the boundary bounce distance in pixels.
func (c *Container) EdgeOffset() int { return c.paging.edgeOffset }

// ScrollX returns the horizontal scroll offset; 0 aligns the first page.
func (c *Container) ScrollX() int { return c.scrollX }

// ContentWidth returns the summed width of all laid-out pages.
func (c *Container) ContentWidth() int { return c.contentWidth }

// MeasuredSize returns the size chosen by the last Measure.
func (c *Container) MeasuredSize() (int, int) { return c.measuredW, c.measuredH }

// Frame returns the bounds handed to the last Layout.
func (c *Container) Frame() Rect { return c.frame }

// Animating reports whether a transition is in flight.
func (c *Container) Animating() bool { return !c.animator.Finished() }

// Dragging reports whether the container owns the current pointer session.
func (c *Container) Dragging() bool { return c.session.active && c.session.intercepted }

// SetFocused records that the host window gained or lost focus. The flag
// does not influence layout or paging.
func (c *Container) SetFocused(focused bool) { c.focused = focused }

// Focused returns the last value given to SetFocused.
func (c *Container) Focused() bool { return c.focused }

// Detach aborts any transition and releases the velocity estimator. The
// container ignores every call afterwards.
func (c *Container) Detach() {
	if c.detached {
		return
	}
	c.abortTransition()
	c.estimator.Release()
	c.session.end()
	c.detached = true
	c.logger.Debug("pager detached")
}

// Detached reports whether Detach has been called.
func (c *Container) Detached() bool { return c.detached }

func (c *Container) scrollTo(x, y int) {
	if x == c.scrollX && y == c.scrollY {
		return
	}
	c.scrollX, c.scrollY = x, y
	c.surface.ScrollTo(x, y)
}

func (c *Container) scrollBy(dx, dy int) {
	c.scrollTo(c.scrollX+dx, c.scrollY+dy)
}
