// Package editor models the interactive configuration screen without any of
// its rendering: slider bounds, live edits, apply and cancel.
package editor

import (
	"github.com/ByteMirror/worldheight/config"
	"github.com/ByteMirror/worldheight/log"
)

// Store is the part of config.Store an editing session needs.
type Store interface {
	MaxWorldHeight() int
	SeaLevel() int
	SetMaxWorldHeight(v int)
	SetSeaLevel(v int)
	SaveAsync() *config.PendingSave
}

// Limits are the slider bounds shown to the user.
type Limits struct {
	MaxWorldHeightMin int
	MaxWorldHeightMax int
	SeaLevelMin       int
	SeaLevelMax       int
}

// SliderLimits returns the bounds the store clamps to.
func SliderLimits() Limits {
	return Limits{
		MaxWorldHeightMin: config.MaxWorldHeightMin,
		MaxWorldHeightMax: config.MaxWorldHeightMax,
		SeaLevelMin:       config.SeaLevelMin,
		SeaLevelMax:       config.SeaLevelMax,
	}
}

// Session is one open editor. Edits go straight to the store; Cancel puts
// back the values seen when the session was opened.
type Session struct {
	store   Store
	origMax int
	origSea int
	dirty   bool
}

// Open starts a session and remembers the current values for Cancel.
func Open(store Store) *Session {
	return &Session{
		store:   store,
		origMax: store.MaxWorldHeight(),
		origSea: store.SeaLevel(),
	}
}

// SetMaxWorldHeight applies a slider move and returns the resulting values.
func (s *Session) SetMaxWorldHeight(v int) (maxHeight, seaLevel int) {
	s.store.SetMaxWorldHeight(v)
	s.dirty = true
	return s.reconcile()
}

// SetSeaLevel applies a slider move and returns the resulting values.
func (s *Session) SetSeaLevel(v int) (maxHeight, seaLevel int) {
	s.store.SetSeaLevel(v)
	s.dirty = true
	return s.reconcile()
}

// reconcile keeps the sea level at least config.SeaLevelHeadroom below the
// build limit. The store setters only clamp their own field.
func (s *Session) reconcile() (maxHeight, seaLevel int) {
	maxHeight = s.store.MaxWorldHeight()
	seaLevel = s.store.SeaLevel()
	if limit := maxHeight - config.SeaLevelHeadroom; seaLevel > limit {
		log.DebugLog.Printf("editor lowered sea level %d -> %d", seaLevel, limit)
		s.store.SetSeaLevel(limit)
		seaLevel = s.store.SeaLevel()
	}
	return maxHeight, seaLevel
}

// Dirty reports whether anything was edited since Open or the last Apply.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Apply persists the edits in the background. The new values become the
// revert point for Cancel.
func (s *Session) Apply() *config.PendingSave {
	s.origMax = s.store.MaxWorldHeight()
	s.origSea = s.store.SeaLevel()
	s.dirty = false
	return s.store.SaveAsync()
}

// Cancel restores the values from the revert point without saving.
func (s *Session) Cancel() {
	s.store.SetMaxWorldHeight(s.origMax)
	s.store.SetSeaLevel(s.origSea)
	s.dirty = false
}
