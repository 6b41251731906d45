package host

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ByteMirror/worldheight/config"
	"github.com/ByteMirror/worldheight/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// syncBuffer lets several loggers share one buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	info, warn, errl, debug := log.InfoLog, log.WarningLog, log.ErrorLog, log.DebugLog
	log.SetOutput(buf, true)
	t.Cleanup(func() {
		log.InfoLog, log.WarningLog, log.ErrorLog, log.DebugLog = info, warn, errl, debug
	})
	return buf
}

func newStore(t *testing.T, contents string) *config.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}
	return config.NewStore(path)
}

func TestHooks(t *testing.T) {
	store := newStore(t, "")
	store.SetMaxWorldHeight(1024)
	store.SetSeaLevel(128)
	h := New(store, 0, time.Minute)

	assert.Equal(t, 1088, h.DimensionHeight())
	assert.Equal(t, -64, h.MinY())
	assert.Equal(t, 1024, h.LogicalHeight())
	assert.Equal(t, 128, h.SeaLevel())
}

func TestHooksConcurrentWithEditor(t *testing.T) {
	store := newStore(t, "")
	h := New(store, 0, time.Millisecond)

	var g errgroup.Group
	g.Go(func() error {
		for i := range 200 {
			store.SetMaxWorldHeight(384 + i)
			store.SetSeaLevel(i)
		}
		return nil
	})
	for range 4 {
		g.Go(func() error {
			for range 200 {
				d := h.DimensionHeight()
				assert.GreaterOrEqual(t, d, 448)
				assert.LessOrEqual(t, d, 2112)
				assert.GreaterOrEqual(t, h.SeaLevel(), 0)
				assert.LessOrEqual(t, h.SeaLevel(), 256)
				assert.Equal(t, -64, h.MinY())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRun(t *testing.T) {
	t.Run("loads on start and saves on stop", func(t *testing.T) {
		store := newStore(t, `{"max_world_height": 4096, "sea_level": 70}`)
		h := New(store, 0, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- h.Run(ctx) }()

		require.Eventually(t, func() bool { return store.MaxWorldHeight() == 2048 }, time.Second, 5*time.Millisecond)
		store.SetSeaLevel(100)
		cancel()
		require.NoError(t, <-done)

		reloaded := config.NewStore(store.Path())
		reloaded.Load()
		assert.Equal(t, 2048, reloaded.MaxWorldHeight())
		assert.Equal(t, 100, reloaded.SeaLevel())
	})

	t.Run("logs the status periodically", func(t *testing.T) {
		logs := captureLogs(t)
		store := newStore(t, `{"max_world_height": 1024, "sea_level": 90}`)
		h := New(store, 5*time.Millisecond, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- h.Run(ctx) }()

		require.Eventually(t, func() bool {
			return strings.Count(logs.String(), "status: max height 1024, min y -64, sea level 90, total height 1088") >= 2
		}, time.Second, 5*time.Millisecond)
		cancel()
		require.NoError(t, <-done)
		assert.Contains(t, logs.String(), "configuration saved on host stop")
	})

	t.Run("returns the save error", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		store := config.NewStore(filepath.Join(blocker, config.ConfigFileName))
		h := New(store, 0, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, h.Run(ctx))
		assert.Equal(t, 384, store.MaxWorldHeight())
	})
}
