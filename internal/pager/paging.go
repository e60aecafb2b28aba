package pager

import "math"

// settle decides where a released drag comes to rest and starts the
// transition there.
func (c *Container) settle() {
	defer c.estimator.Reset()

	if c.paging.count == 0 {
		return
	}

	from := c.paging.current
	velocity := c.estimator.Velocity()
	to, compensation := decide(c.paging, c.scrollX, velocity, c.opts.flingThreshold)
	c.paging.current = to

	dx := to*c.paging.pitch - c.scrollX + compensation
	c.StartTransition(dx, 0, c.opts.settle)

	c.logger.Debug("pager settle",
		"from", from, "to", to, "velocity", velocity,
		"scroll_x", c.scrollX, "compensation", compensation, "dx", dx)

	if c.opts.onPageChange != nil {
		c.opts.onPageChange(from, to)
	}
}

// decide returns the page to settle on and the edge compensation to add to
// its aligned offset.
//
// A release at or above the fling threshold steps one page against the
// velocity sign: positive velocity is a drag towards the right, which
// reveals the previous page. Slower releases round the offset to the
// nearest page. A zero pitch keeps the current page.
func decide(p pagingState, scrollX int, velocity, threshold float64) (index, compensation int) {
	from := p.current
	index = from
	switch {
	case math.Abs(velocity) >= threshold:
		if velocity > 0 {
			index--
		} else {
			index++
		}
	case p.pitch > 0:
		index = (scrollX + p.pitch/2) / p.pitch
	}
	index = p.clamp(index)
	return index, edgeCompensation(p, from, index)
}

// edgeCompensation biases the settle offset so that a sliver of the
// neighbouring content stays visible. Leaving an inner page nudges towards
// the page just left. Bouncing off either end nudges away from the edge.
// The rules are tried in order and the first match wins; with a single page
// the last-page rule applies.
func edgeCompensation(p pagingState, from, to int) int {
	switch {
	case from != 0 && from != p.last():
		switch {
		case to < from:
			return p.edgeOffset
		case to > from:
			return -p.edgeOffset
		}
		return 0
	case to == p.last() && from == p.last():
		return -p.edgeOffset
	case to == 0 && from == 0:
		return p.edgeOffset
	}
	return 0
}
