package editor

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/ByteMirror/worldheight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore clamps like config.Store but lets the headroom rule be
// exercised with a sea level ceiling above the minimum build limit.
type fakeStore struct {
	mu        sync.Mutex
	maxHeight int
	seaLevel  int
	saves     int
	path      string
}

func (f *fakeStore) MaxWorldHeight() int { f.mu.Lock(); defer f.mu.Unlock(); return f.maxHeight }
func (f *fakeStore) SeaLevel() int       { f.mu.Lock(); defer f.mu.Unlock(); return f.seaLevel }

func (f *fakeStore) SetMaxWorldHeight(v int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.maxHeight = max(100, min(2048, v))
}

func (f *fakeStore) SetSeaLevel(v int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seaLevel = max(0, min(1000, v))
}

func (f *fakeStore) SaveAsync() *config.PendingSave {
	f.mu.Lock()
	f.saves++
	f.mu.Unlock()
	return config.NewStore(f.path).SaveAsync()
}

func TestSliderLimits(t *testing.T) {
	l := SliderLimits()
	assert.Equal(t, Limits{MaxWorldHeightMin: 384, MaxWorldHeightMax: 2048, SeaLevelMin: 0, SeaLevelMax: 256}, l)
}

func TestSession(t *testing.T) {
	t.Run("edits go through the store", func(t *testing.T) {
		store := config.NewStore(filepath.Join(t.TempDir(), config.ConfigFileName))
		s := Open(store)

		maxHeight, sea := s.SetMaxWorldHeight(5000)
		assert.Equal(t, 2048, maxHeight)
		assert.Equal(t, 63, sea)

		maxHeight, sea = s.SetSeaLevel(9999)
		assert.Equal(t, 2048, maxHeight)
		assert.Equal(t, 256, sea)
		assert.True(t, s.Dirty())
		assert.Equal(t, 256, store.SeaLevel())
	})

	t.Run("sea level is kept below the build limit", func(t *testing.T) {
		store := &fakeStore{maxHeight: 400, seaLevel: 63}
		s := Open(store)

		maxHeight, sea := s.SetSeaLevel(395)
		assert.Equal(t, 400, maxHeight)
		assert.Equal(t, 390, sea)

		maxHeight, sea = s.SetMaxWorldHeight(200)
		assert.Equal(t, 200, maxHeight)
		assert.Equal(t, 190, sea)
	})

	t.Run("cancel restores the opening values", func(t *testing.T) {
		store := config.NewStore(filepath.Join(t.TempDir(), config.ConfigFileName))
		store.SetMaxWorldHeight(1000)
		s := Open(store)

		s.SetMaxWorldHeight(2000)
		s.SetSeaLevel(10)
		s.Cancel()

		assert.Equal(t, 1000, store.MaxWorldHeight())
		assert.Equal(t, 63, store.SeaLevel())
		assert.False(t, s.Dirty())
	})

	t.Run("apply saves and moves the revert point", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFileName)
		store := config.NewStore(path)
		s := Open(store)

		s.SetMaxWorldHeight(1200)
		require.NoError(t, s.Apply().Wait())
		assert.False(t, s.Dirty())

		s.SetMaxWorldHeight(600)
		s.Cancel()
		assert.Equal(t, 1200, store.MaxWorldHeight())

		reloaded := config.NewStore(path)
		reloaded.Load()
		assert.Equal(t, 1200, reloaded.MaxWorldHeight())
	})

	t.Run("apply uses the background save", func(t *testing.T) {
		store := &fakeStore{maxHeight: 384, seaLevel: 63, path: filepath.Join(t.TempDir(), config.ConfigFileName)}
		s := Open(store)

		require.NoError(t, s.Apply().Wait())
		assert.Equal(t, 1, store.saves)
	})
}
