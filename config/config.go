package config

import (
	"github.com/ByteMirror/worldheight/log"
)

const ConfigFileName = "increased-world-height.json"

// Value bounds. The floor is locked to the vanilla value; any other floor
// corrupts chunk rendering.
const (
	LockedMinY = -64

	DefaultMaxWorldHeight = 384
	DefaultSeaLevel       = 63

	MaxWorldHeightMin = 384
	MaxWorldHeightMax = 2048
	SeaLevelMin       = 0
	SeaLevelMax       = 256

	// SeaLevelHeadroom is the minimum gap between the sea level and the build limit.
	SeaLevelHeadroom = 10
)

// Configuration is the persisted world height configuration.
type Configuration struct {
	// MaxWorldHeight is the upper build limit.
	MaxWorldHeight int `json:"max_world_height"`
	// MinYLimit is always LockedMinY. It is kept so older files keep their shape.
	MinYLimit int `json:"min_y_limit"`
	// SeaLevel is the water surface elevation.
	SeaLevel int `json:"sea_level"`
}

// DefaultConfiguration returns the default configuration
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxWorldHeight: DefaultMaxWorldHeight,
		MinYLimit:      LockedMinY,
		SeaLevel:       DefaultSeaLevel,
	}
}

// TotalWorldHeight is the number of blocks between the floor and the build limit.
func (c Configuration) TotalWorldHeight() int {
	return c.MaxWorldHeight - c.MinYLimit
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// validate repairs every invariant in order and reports whether anything changed.
func (c *Configuration) validate() bool {
	changed := false

	if c.MinYLimit != LockedMinY {
		log.WarningLog.Printf("min y limit %d forced to %d to prevent rendering corruption", c.MinYLimit, LockedMinY)
		c.MinYLimit = LockedMinY
		changed = true
	}

	if v := clamp(c.MaxWorldHeight, MaxWorldHeightMin, MaxWorldHeightMax); v != c.MaxWorldHeight {
		log.WarningLog.Printf("corrected invalid max world height: %d -> %d", c.MaxWorldHeight, v)
		c.MaxWorldHeight = v
		changed = true
	}

	if v := clamp(c.SeaLevel, SeaLevelMin, SeaLevelMax); v != c.SeaLevel {
		log.WarningLog.Printf("corrected invalid sea level: %d -> %d", c.SeaLevel, v)
		c.SeaLevel = v
		changed = true
	}

	// Unreachable with the current bounds (SeaLevelMax < MaxWorldHeightMin-SeaLevelHeadroom);
	// kept so the headroom rule still holds if the ranges change.
	if limit := c.MaxWorldHeight - SeaLevelHeadroom; c.SeaLevel > limit {
		log.WarningLog.Printf("adjusted sea level %d to stay below max height: %d", c.SeaLevel, limit)
		c.SeaLevel = limit
		changed = true
	}

	if changed {
		log.InfoLog.Printf("configuration validated and corrected")
	}
	return changed
}
