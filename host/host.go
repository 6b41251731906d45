// Package host exposes the world height values to the background host
// process and ties the store to its lifecycle: load on start, save on stop.
package host

import (
	"context"
	"time"

	"github.com/ByteMirror/worldheight/log"
)

// Store is the part of config.Store the host reads.
type Store interface {
	Load()
	Save() error
	MaxWorldHeight() int
	MinYLimit() int
	SeaLevel() int
	TotalWorldHeight() int
}

// Host answers the dimension and terrain generator hooks.
type Host struct {
	store          Store
	statusInterval time.Duration
	trace          *log.Every
}

// New returns a Host reading from store. While running it logs a status line
// every statusInterval (never when zero). Hook calls are traced to the debug
// log at most once per traceInterval.
func New(store Store, statusInterval, traceInterval time.Duration) *Host {
	return &Host{
		store:          store,
		statusInterval: statusInterval,
		trace:          log.NewEvery(traceInterval),
	}
}

// DimensionHeight is the total number of blocks a dimension spans.
func (h *Host) DimensionHeight() int {
	height := h.store.MaxWorldHeight() - h.store.MinYLimit()
	h.traceHook("dimension height", height)
	return height
}

// MinY is the lowest buildable block.
func (h *Host) MinY() int {
	return h.store.MinYLimit()
}

// LogicalHeight is the build limit used for portals and chorus fruit.
func (h *Host) LogicalHeight() int {
	height := h.store.MaxWorldHeight()
	h.traceHook("logical height", height)
	return height
}

// SeaLevel is the water surface used by the terrain generator.
func (h *Host) SeaLevel() int {
	level := h.store.SeaLevel()
	h.traceHook("sea level", level)
	return level
}

func (h *Host) traceHook(name string, v int) {
	if h.trace.ShouldLog() {
		log.DebugLog.Printf("hook %s -> %d", name, v)
	}
}

func (h *Host) logStatus(prefix string) {
	log.InfoLog.Printf("%s: max height %d, min y %d, sea level %d, total height %d",
		prefix, h.store.MaxWorldHeight(), h.store.MinYLimit(), h.store.SeaLevel(), h.store.TotalWorldHeight())
}

// Run loads the configuration, logs its status periodically until ctx is done
// and then saves. The returned error is the save error, if any.
func (h *Host) Run(ctx context.Context) error {
	h.store.Load()
	h.logStatus("configuration loaded")
	log.InfoLog.Printf("world height host active")

	var tick <-chan time.Time
	if h.statusInterval > 0 {
		ticker := time.NewTicker(h.statusInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

wait:
	for {
		select {
		case <-ctx.Done():
			break wait
		case <-tick:
			h.logStatus("status")
		}
	}

	if err := h.store.Save(); err != nil {
		return err
	}
	log.InfoLog.Printf("configuration saved on host stop")
	return nil
}
