package pager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type fakeSurface struct {
	scrolls       []int
	invalidations int
}

func (s *fakeSurface) ScrollTo(x, _ int) { s.scrolls = append(s.scrolls, x) }
func (s *fakeSurface) Invalidate()       { s.invalidations++ }

type fakeChild struct {
	w, h     int
	hidden   bool
	mw, mh   int
	bounds   Rect
	measured int
}

func (f *fakeChild) Measure(w, h MeasureSpec) {
	f.measured++
	f.mw, f.mh = w.Resolve(f.w), h.Resolve(f.h)
}
func (f *fakeChild) MeasuredSize() (int, int) { return f.mw, f.mh }
func (f *fakeChild) Layout(r Rect)            { f.bounds = r }
func (f *fakeChild) Visible() bool            { return !f.hidden }

// touchChild accepts every sequence it is offered and records what it saw.
type touchChild struct {
	fakeChild
	accept bool
	events []PointerEvent
}

func (t *touchChild) HandlePointer(ev PointerEvent) bool {
	t.events = append(t.events, ev)
	return t.accept
}

func (t *touchChild) actions() []PointerAction {
	out := make([]PointerAction, 0, len(t.events))
	for _, ev := range t.events {
		out = append(out, ev.Action)
	}
	return out
}

// fixedVelocity reports a preset velocity regardless of samples.
type fixedVelocity struct {
	v        float64
	samples  int
	resets   int
	released bool
}

func (f *fixedVelocity) AddSample(PointerEvent) { f.samples++ }
func (f *fixedVelocity) Velocity() float64      { return f.v }
func (f *fixedVelocity) Reset()                 { f.resets++ }
func (f *fixedVelocity) Release()               { f.released = true }

type harness struct {
	c        *Container
	surface  *fakeSurface
	clock    *fakeClock
	velocity *fixedVelocity
}

// newHarness builds a container with n uniform pages of width w and a
// 60px edge offset, measured and laid out, offset settled on page 0.
func newHarness(t *testing.T, n, w int, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		surface:  &fakeSurface{},
		clock:    &fakeClock{now: t0},
		velocity: &fixedVelocity{},
	}
	base := []Option{
		WithEdgeOffsetDp(60),
		WithDensity(1),
		WithClock(h.clock.Now),
		WithVelocityEstimator(h.velocity),
	}
	h.c = New(h.surface, append(base, opts...)...)
	for i := 0; i < n; i++ {
		h.c.AddChild(&fakeChild{w: w, h: 20})
	}
	h.layout(w)
	return h
}

func (h *harness) layout(w int) {
	h.c.Measure(ExactSpec(w), ExactSpec(20))
	h.c.Layout(Rect{Right: w, Bottom: 20})
	h.drain()
}

// drain runs frames until the transition in flight converges.
func (h *harness) drain() {
	for i := 0; i < 1000 && h.c.ComputeScroll(h.clock.Advance(16*time.Millisecond)); i++ {
	}
}

func (h *harness) down(x, y int) bool {
	return h.c.DispatchPointer(PointerEvent{Action: ActionDown, X: x, Y: y, At: h.clock.now})
}

func (h *harness) move(x, y int) bool {
	return h.c.DispatchPointer(PointerEvent{Action: ActionMove, X: x, Y: y, At: h.clock.Advance(10 * time.Millisecond)})
}

func (h *harness) up(x, y int) bool {
	return h.c.DispatchPointer(PointerEvent{Action: ActionUp, X: x, Y: y, At: h.clock.Advance(10 * time.Millisecond)})
}

func requireOffset(t *testing.T, h *harness, want int) {
	t.Helper()
	require.Equal(t, want, h.c.ScrollX())
}
