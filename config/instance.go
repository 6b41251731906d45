package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/ByteMirror/worldheight/log"
)

// Loader hands out one lazily loaded Store. Concurrent first callers share a
// single Load.
type Loader struct {
	path  string
	mu    sync.Mutex
	store atomic.Pointer[Store]

	// load initialises a new store; tests wrap it.
	load func(s *Store)
}

// NewLoader returns a Loader for path. An empty path is resolved with
// ResolvePath on first use.
func NewLoader(path string) *Loader {
	return &Loader{path: path, load: (*Store).Load}
}

// Get returns the store, loading it on the first call.
func (l *Loader) Get() *Store {
	if s := l.store.Load(); s != nil {
		return s
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring the lock
	if s := l.store.Load(); s != nil {
		return s
	}

	s := NewStore(l.resolve())
	l.load(s)
	l.store.Store(s)
	return s
}

func (l *Loader) resolve() string {
	if l.path != "" {
		return l.path
	}
	path, err := ResolvePath("")
	if err != nil {
		path = filepath.Join(os.TempDir(), ".worldheight", ConfigFileName)
		log.ErrorLog.Printf("failed to resolve config path, falling back to %s: %v", path, err)
	}
	return path
}

var defaultLoader = NewLoader("")

// Instance returns the process-wide store, loading it from the path given by
// ResolvePath("") on first use.
func Instance() *Store {
	return defaultLoader.Get()
}
