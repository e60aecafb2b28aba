package pager

import "time"

// gestureSession lives from a Down to the matching Up or Cancel. The last*
// positions survive the session: they are only ever overwritten by the next
// event.
type gestureSession struct {
	lastX, lastY   int // reference for the next interception delta
	lastInterceptX int // reference for the next drag delta
	lastInterceptY int
	active         bool
	intercepted    bool // the container owns the sequence
	target         int  // index of the descendant that accepted the Down, -1 for none
}

func (g *gestureSession) end() {
	g.active = false
	g.intercepted = false
	g.target = -1
}

// pagingState persists across gestures.
type pagingState struct {
	current    int // page index, clamped to [0, count-1] when count > 0
	count      int // visible children
	pitch      int // width of the last laid-out child
	edgeOffset int // bounce distance in pixels
}

func (p pagingState) last() int { return p.count - 1 }

func (p pagingState) clamp(i int) int {
	if p.count <= 0 {
		return 0
	}
	return max(0, min(i, p.count-1))
}

// scrollAnimation mirrors the animator's in-flight transition.
type scrollAnimation struct {
	from     int
	delta    int
	duration time.Duration
	started  time.Time
	running  bool
}

func (a scrollAnimation) target() int { return a.from + a.delta }
