package main

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipepager/internal/config"
	"swipepager/internal/eventbus"
)

func savedLastPage(t *testing.T, cs config.ConfigService) int {
	t.Helper()
	cfg, err := cs.Load()
	require.NoError(t, err)
	return cfg.UISettings.LastPage
}

func TestRecorderSkipsOlderChanges(t *testing.T) {
	cs := config.NewConfigService(filepath.Join(t.TempDir(), "config.toml"), nil)
	r := newLastPageRecorder(cs, *config.DefaultConfig())

	require.NoError(t, r.Record(eventbus.ConfigChangedEvent{LastPage: 4, Seq: 4}))
	require.NoError(t, r.Record(eventbus.ConfigChangedEvent{LastPage: 3, Seq: 3}))
	require.NoError(t, r.Record(eventbus.ConfigChangedEvent{LastPage: 1, Seq: 1}))

	assert.Equal(t, 4, r.LastPage())
	assert.Equal(t, 4, savedLastPage(t, cs))
}

func TestRecorderKeepsNewestOfBurst(t *testing.T) {
	cs := config.NewConfigService(filepath.Join(t.TempDir(), "config.toml"), nil)
	r := newLastPageRecorder(cs, *config.DefaultConfig())

	bus := eventbus.New(context.Background())
	defer bus.Close()

	var handled atomic.Int32
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		assert.NoError(t, r.Record(e.(eventbus.ConfigChangedEvent)))
		handled.Add(1)
	})
	for i := 1; i <= 50; i++ {
		bus.Publish(eventbus.ConfigChangedEvent{LastPage: i % 7, Seq: uint64(i)})
	}
	require.Eventually(t, func() bool { return handled.Load() == 50 }, 5*time.Second, 5*time.Millisecond)

	assert.Equal(t, 50%7, savedLastPage(t, cs))
}

func TestRecorderFlushWinsOverLateChanges(t *testing.T) {
	cs := config.NewConfigService(filepath.Join(t.TempDir(), "config.toml"), nil)
	r := newLastPageRecorder(cs, *config.DefaultConfig())

	require.NoError(t, r.Record(eventbus.ConfigChangedEvent{LastPage: 2, Seq: 1}))
	require.NoError(t, r.Flush(5))
	require.NoError(t, r.Record(eventbus.ConfigChangedEvent{LastPage: 3, Seq: 2}))

	assert.Equal(t, 5, savedLastPage(t, cs))
}

func TestRecorderFlushWithoutChangeDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	r := newLastPageRecorder(config.NewConfigService(path, nil), *config.DefaultConfig())

	require.NoError(t, r.Flush(0))
	assert.NoFileExists(t, path)
}

func TestRecorderKeepsOtherSettings(t *testing.T) {
	cs := config.NewConfigService(filepath.Join(t.TempDir(), "config.toml"), nil)
	cfg := config.DefaultConfig()
	cfg.Pager.Density = 0.25
	cfg.Pages = []config.PageConfig{{Title: "a", Body: "alpha"}}
	r := newLastPageRecorder(cs, *cfg)

	require.NoError(t, r.Flush(1))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, 0.25, loaded.Pager.Density)
	assert.Equal(t, cfg.Pages, loaded.Pages)
	assert.Equal(t, 1, loaded.UISettings.LastPage)
}
