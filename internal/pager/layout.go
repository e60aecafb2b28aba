package pager

// Measure measures every visible child against the container's own specs
// and sizes the container. The first visible child's size stands in for
// every page when a dimension wraps its content.
func (c *Container) Measure(w, h MeasureSpec) (int, int) {
	var first Child
	n := 0
	for _, ch := range c.children {
		if !ch.Visible() {
			continue
		}
		ch.Measure(w, h)
		if first == nil {
			first = ch
		}
		n++
	}

	switch {
	case n == 0:
		c.measuredW, c.measuredH = 0, 0
	case w.Mode == AtMost && h.Mode == AtMost:
		fw, fh := first.MeasuredSize()
		c.measuredW, c.measuredH = fw*n, fh
	case w.Mode == AtMost:
		fw, _ := first.MeasuredSize()
		c.measuredW, c.measuredH = fw*n, h.Size
	case h.Mode == AtMost:
		_, fh := first.MeasuredSize()
		c.measuredW, c.measuredH = w.Size, fh
	default:
		c.measuredW, c.measuredH = defaultSize(w), defaultSize(h)
	}
	return c.measuredW, c.measuredH
}

func defaultSize(s MeasureSpec) int {
	if s.Mode == Unspecified {
		return 0
	}
	return s.Size
}

// Layout places the visible children left to right at their measured
// widths and then snaps the offset back onto the current page boundary with
// a zero-length transition. The width of the last placed child becomes the
// page pitch. The snap moves by current*pitch - scrollX rather than by a
// whole page width, so a Layout on an aligned offset leaves it unchanged.
func (c *Container) Layout(bounds Rect) {
	if c.detached {
		return
	}
	c.frame = bounds

	left, count, pitch := 0, 0, 0
	for i, ch := range c.children {
		if !ch.Visible() {
			c.bounds[i] = Rect{}
			continue
		}
		cw, chh := ch.MeasuredSize()
		r := Rect{Left: left, Top: 0, Right: left + cw, Bottom: chh}
		ch.Layout(r)
		c.bounds[i] = r
		pitch = cw
		left += cw
		count++
	}

	c.contentWidth = left
	c.paging.count = count
	c.paging.pitch = pitch
	c.paging.current = c.paging.clamp(c.paging.current)

	c.StartTransition(c.paging.current*c.paging.pitch-c.scrollX, 0, 0)
}
