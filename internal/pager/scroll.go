package pager

import "time"

// StartTransition animates the scroll offset by dx from where it is now.
// Any transition still in flight is dropped at its current position. A zero
// duration jumps on the next ComputeScroll. Vertical paging is not
// supported, so dy is ignored and the vertical offset stays at 0.
func (c *Container) StartTransition(dx, dy int, d time.Duration) {
	if c.detached {
		return
	}

	now := c.now()
	if !c.animator.Finished() {
		c.animator.Abort()
	}
	c.animator.Start(c.scrollX, dx, d, now)
	c.anim = scrollAnimation{from: c.scrollX, delta: dx, duration: d, started: now, running: true}
	c.surface.Invalidate()
}

// ComputeScroll advances the running transition to now. It returns false
// when nothing is in flight; otherwise it applies the sampled offset and,
// until the transition is done, asks the surface for another frame.
func (c *Container) ComputeScroll(now time.Time) bool {
	if c.detached || c.animator.Finished() {
		return false
	}

	offset, done := c.animator.Step(now)
	c.scrollTo(offset, 0)
	if done {
		c.anim.running = false
		return true
	}
	c.surface.Invalidate()
	return true
}

// TransitionTarget returns the offset the current or last transition
// converges to.
func (c *Container) TransitionTarget() int { return c.anim.target() }

// ScrollToPage settles on page i with the standard settle duration. The
// offset lands exactly on the page boundary.
func (c *Container) ScrollToPage(i int) {
	if c.detached || c.paging.count == 0 {
		return
	}
	from := c.paging.current
	to := c.paging.clamp(i)
	c.paging.current = to
	c.StartTransition(to*c.paging.pitch-c.scrollX, 0, c.opts.settle)
	if c.opts.onPageChange != nil {
		c.opts.onPageChange(from, to)
	}
}

// SetCurrentPage selects page i without animating. The offset follows on
// the next Layout. Before the first Layout i is clamped against the visible
// children.
func (c *Container) SetCurrentPage(i int) {
	if c.paging.count > 0 {
		c.paging.current = c.paging.clamp(i)
		return
	}
	n := 0
	for _, ch := range c.children {
		if ch.Visible() {
			n++
		}
	}
	c.paging.current = max(0, min(i, n-1))
}

func (c *Container) abortTransition() {
	c.animator.Abort()
	c.anim.running = false
}
