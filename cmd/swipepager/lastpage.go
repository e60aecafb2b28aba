package main

import (
	"sync"

	"swipepager/internal/config"
	"swipepager/internal/eventbus"
)

// lastPageRecorder persists ui.last_page. Bus handlers run concurrently, so
// changes carry a sequence number and anything older than what was already
// written is skipped. Flush writes the final page and closes the recorder.
type lastPageRecorder struct {
	mu     sync.Mutex
	cs     config.ConfigService
	cfg    config.Config
	seq    uint64
	closed bool
}

func newLastPageRecorder(cs config.ConfigService, cfg config.Config) *lastPageRecorder {
	return &lastPageRecorder{cs: cs, cfg: cfg}
}

// Record saves ev unless a newer change was saved already.
func (r *lastPageRecorder) Record(ev eventbus.ConfigChangedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || ev.Seq <= r.seq {
		return nil
	}
	r.seq = ev.Seq
	return r.save(ev.LastPage)
}

// Flush saves page and ignores every later Record.
func (r *lastPageRecorder) Flush(page int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if page == r.cfg.UISettings.LastPage {
		return nil
	}
	return r.save(page)
}

// LastPage returns the page most recently written.
func (r *lastPageRecorder) LastPage() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.UISettings.LastPage
}

func (r *lastPageRecorder) save(page int) error {
	r.cfg.UISettings.LastPage = page
	return r.cs.Save(&r.cfg)
}
