package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/ByteMirror/worldheight/log"
)

// Store holds the current Configuration and persists it to a single file.
//
// Lock order is fileMu then mu. mu guards cfg; fileMu serialises writes to
// path so concurrent saves never interleave and the last write always carries
// the newest snapshot.
type Store struct {
	path string

	fileMu sync.Mutex
	mu     sync.RWMutex
	cfg    Configuration
}

// NewStore returns a store backed by path holding the defaults. Call Load to
// read the file.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		cfg:  DefaultConfiguration(),
	}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the current configuration with the one on disk, repairs it
// and writes the repaired value back. A missing, unreadable or corrupt file
// yields the defaults. Load never leaves the store without a valid value.
func (s *Store) Load() {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.readFile()
	cfg.validate()
	s.cfg = cfg

	if err := s.writeFile(cfg); err != nil {
		log.ErrorLog.Printf("failed to save validated configuration: %v", err)
	}
}

func (s *Store) readFile() Configuration {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.InfoLog.Printf("created new configuration with defaults")
		} else {
			log.ErrorLog.Printf("failed to read config file, using defaults: %v", err)
		}
		return DefaultConfiguration()
	}

	cfg, ok := decodeConfiguration(data)
	if !ok {
		log.ErrorLog.Printf("failed to parse config file %s, using defaults", s.path)
		return cfg
	}
	log.InfoLog.Printf("configuration loaded from %s", s.path)
	return cfg
}

// writeFile must be called with fileMu held.
func (s *Store) writeFile(cfg Configuration) error {
	existing, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WarningLog.Printf("failed to read config file before save, unknown keys are dropped: %v", err)
	}

	data, err := encodeConfiguration(existing, cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return atomicWriteFile(s.path, data, 0644)
}

// Save writes the current configuration to disk. The error is logged as well
// as returned; the in-memory value is never affected.
func (s *Store) Save() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	cfg := s.Snapshot()
	if err := s.writeFile(cfg); err != nil {
		log.ErrorLog.Printf("failed to save configuration: %v", err)
		return err
	}
	log.DebugLog.Printf("configuration saved to %s", s.path)
	return nil
}

// PendingSave tracks a save running in the background.
type PendingSave struct {
	done chan struct{}
	err  error
}

// Done is closed once the save has finished.
func (p *PendingSave) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the save has finished and returns its error.
func (p *PendingSave) Wait() error {
	<-p.done
	return p.err
}

// WaitContext is Wait bounded by ctx. The save keeps running if ctx ends first.
func (p *PendingSave) WaitContext(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SaveAsync runs Save on its own goroutine. Callers may drop the handle.
func (s *Store) SaveAsync() *PendingSave {
	p := &PendingSave{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.err = s.Save()
	}()
	return p
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Store) MaxWorldHeight() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.MaxWorldHeight
}

func (s *Store) SeaLevel() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.SeaLevel
}

// MinYLimit always returns LockedMinY. The stored field is never consulted,
// so no lock is needed.
func (s *Store) MinYLimit() int {
	return LockedMinY
}

// TotalWorldHeight returns MaxWorldHeight minus the floor.
func (s *Store) TotalWorldHeight() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.MaxWorldHeight - LockedMinY
}

// SetMaxWorldHeight clamps v into [MaxWorldHeightMin, MaxWorldHeightMax].
// The sea level is not re-checked; callers that need the headroom rule
// enforce it themselves.
func (s *Store) SetMaxWorldHeight(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.cfg.MaxWorldHeight
	s.cfg.MaxWorldHeight = clamp(v, MaxWorldHeightMin, MaxWorldHeightMax)
	if old != s.cfg.MaxWorldHeight {
		log.DebugLog.Printf("max world height changed: %d -> %d", old, s.cfg.MaxWorldHeight)
	}
}

// SetSeaLevel clamps v into [SeaLevelMin, SeaLevelMax]. Like
// SetMaxWorldHeight it only touches its own field.
func (s *Store) SetSeaLevel(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.cfg.SeaLevel
	s.cfg.SeaLevel = clamp(v, SeaLevelMin, SeaLevelMax)
	if old != s.cfg.SeaLevel {
		log.DebugLog.Printf("sea level changed: %d -> %d", old, s.cfg.SeaLevel)
	}
}

// SetMinYLimit does nothing. The floor is locked.
func (s *Store) SetMinYLimit(v int) {
	log.WarningLog.Printf("ignored attempt to change min y limit to %d: the floor is locked at %d", v, LockedMinY)
}

// ResetToDefaults restores every field to its default in one step.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = DefaultConfiguration()
	log.InfoLog.Printf("configuration reset to defaults")
}
