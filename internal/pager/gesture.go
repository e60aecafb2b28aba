package pager

// InterceptPointer is the interception query. It returns true when the
// container wants to take the sequence away from its descendants. A Down is
// never claimed; a Move is claimed when its horizontal travel since the
// previous event beats the vertical travel; an Up is never claimed. Every
// call moves the reference position to ev, whatever the outcome.
func (c *Container) InterceptPointer(ev PointerEvent) bool {
	if c.detached {
		return false
	}

	intercepted := false
	switch ev.Action {
	case ActionDown:
		if !c.animator.Finished() {
			c.abortTransition()
		}
	case ActionMove:
		dx := ev.X - c.session.lastX
		dy := ev.Y - c.session.lastY
		intercepted = abs(dx) > abs(dy)
	}

	c.session.lastX, c.session.lastY = ev.X, ev.Y
	c.session.lastInterceptX, c.session.lastInterceptY = ev.X, ev.Y
	return intercepted
}

// HandlePointer handles an event of a sequence the container owns: a Move
// drags the content 1:1, an Up or Cancel settles on a page.
func (c *Container) HandlePointer(ev PointerEvent) bool {
	if c.detached {
		return false
	}

	c.estimator.AddSample(ev)
	switch ev.Action {
	case ActionDown:
		if !c.animator.Finished() {
			c.abortTransition()
		}
	case ActionMove:
		c.scrollBy(-(ev.X - c.session.lastInterceptX), 0)
	case ActionUp, ActionCancel:
		c.settle()
	}

	c.session.lastInterceptX, c.session.lastInterceptY = ev.X, ev.Y
	return true
}

// DispatchPointer routes one event of a pointer session. Until the
// container claims the session, every event is first offered to
// InterceptPointer and then to the descendant that accepted the Down. When
// the container claims mid-session that descendant receives a Cancel. When
// no descendant accepts the Down the container owns the session from the
// start.
func (c *Container) DispatchPointer(ev PointerEvent) bool {
	if c.detached {
		return false
	}
	if ev.Action == ActionDown {
		c.session.end()
		c.session.active = true
	}
	if !c.session.active {
		return false
	}
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		defer c.session.end()
	}

	if c.session.intercepted {
		return c.HandlePointer(ev)
	}

	if c.InterceptPointer(ev) {
		c.session.intercepted = true
		if t := c.session.target; t >= 0 {
			c.deliver(t, PointerEvent{Action: ActionCancel, X: ev.X, Y: ev.Y, At: ev.At})
			c.session.target = -1
		}
		c.logger.Debug("pager claimed gesture", "x", ev.X, "y", ev.Y)
		return true
	}

	if ev.Action == ActionDown {
		if t := c.hitTest(ev.X, ev.Y); t >= 0 && c.deliver(t, ev) {
			c.session.target = t
			return true
		}
		c.session.intercepted = true
		return c.HandlePointer(ev)
	}

	if t := c.session.target; t >= 0 {
		return c.deliver(t, ev)
	}
	return false
}

// hitTest returns the index of the visible child under (x, y) in
// container coordinates, or -1.
func (c *Container) hitTest(x, y int) int {
	cx, cy := x+c.scrollX, y+c.scrollY
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i].Visible() && c.bounds[i].Contains(cx, cy) {
			return i
		}
	}
	return -1
}

// deliver hands ev to child i in the child's own coordinates.
func (c *Container) deliver(i int, ev PointerEvent) bool {
	if i < 0 || i >= len(c.children) {
		return false
	}
	t, ok := c.children[i].(PointerTarget)
	if !ok {
		return false
	}
	b := c.bounds[i]
	return t.HandlePointer(ev.Offset(c.scrollX-b.Left, c.scrollY-b.Top))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
