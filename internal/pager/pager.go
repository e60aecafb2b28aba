// Package pager implements a horizontally paginated container.
//
// A Container lays out its children side by side, one page per visible
// child, and settles on a page after every drag. It never renders anything
// itself: the host measures and lays it out, feeds it pointer events and
// frame ticks, and repaints whenever the container reports a new scroll
// offset through its Surface.
//
// All methods must be called from the host's single UI loop.
package pager

import "time"

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	ActionDown PointerAction = iota
	ActionMove
	ActionUp
	ActionCancel
)

func (a PointerAction) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one sample of a pointer session in container coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   int
	At     time.Time
}

// Offset returns a copy of the event translated by (dx, dy).
func (e PointerEvent) Offset(dx, dy int) PointerEvent {
	e.X += dx
	e.Y += dy
	return e
}

// MeasureMode says how a MeasureSpec size constrains a child.
type MeasureMode int

const (
	Unspecified MeasureMode = iota
	Exactly
	AtMost
)

// MeasureSpec is a size constraint handed down during measurement.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactSpec returns an Exactly spec of size n.
func ExactSpec(n int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: n} }

// AtMostSpec returns an AtMost spec of size n.
func AtMostSpec(n int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: n} }

// UnspecifiedSpec returns a spec that places no constraint.
func UnspecifiedSpec() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Resolve picks a size for content that wants `desired` under the spec.
func (s MeasureSpec) Resolve(desired int) int {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		return min(desired, s.Size)
	default:
		return desired
	}
}

// Rect is an axis-aligned rectangle; Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Child is a page. The container assigns its position and size but never
// looks at its content.
type Child interface {
	Measure(w, h MeasureSpec)
	MeasuredSize() (w, h int)
	Layout(bounds Rect)
	Visible() bool
}

// PointerTarget is implemented by children that want pointer events.
// Returning true from a Down claims the rest of the sequence until the
// container intercepts it.
type PointerTarget interface {
	HandlePointer(ev PointerEvent) bool
}

// Surface is how the container reaches its host.
type Surface interface {
	// ScrollTo repositions the visible viewport.
	ScrollTo(x, y int)
	// Invalidate asks for a repaint and, while a transition runs, another
	// ComputeScroll on the next frame.
	Invalidate()
}

// VelocityEstimator accumulates pointer samples for one session.
type VelocityEstimator interface {
	AddSample(ev PointerEvent)
	// Velocity returns the horizontal velocity in pixels per second.
	Velocity() float64
	Reset()
	Release()
}

// OffsetAnimator produces a monotonic sequence of offsets converging to
// from+delta within d.
type OffsetAnimator interface {
	Start(from, delta int, d time.Duration, now time.Time)
	Step(now time.Time) (offset int, done bool)
	Abort()
	Finished() bool
}
