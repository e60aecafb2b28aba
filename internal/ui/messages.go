package ui

import (
	"swipepager/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg drives one animation frame. Frames from an older loop carry a
// stale generation and are dropped.
type frameMsg struct {
	gen uint64
}

// pagerExitMsg is sent when the full-screen reader returns
type pagerExitMsg struct {
	what string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
