package config

import (
	"fmt"
	"math"

	"github.com/ByteMirror/worldheight/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	keyMaxWorldHeight = "max_world_height"
	keyMinYLimit      = "min_y_limit"
	keySeaLevel       = "sea_level"
)

// decodeConfiguration reads a configuration field by field. Missing or
// malformed fields keep their default and a repeated key takes its last
// value. ok is false when data is not a JSON object at all, in which case the
// defaults are returned unchanged.
func decodeConfiguration(data []byte) (cfg Configuration, ok bool) {
	cfg = DefaultConfiguration()
	if !gjson.ValidBytes(data) {
		return cfg, false
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return cfg, false
	}

	last := make(map[string]gjson.Result, 3)
	root.ForEach(func(k, v gjson.Result) bool {
		switch name := k.String(); name {
		case keyMaxWorldHeight, keyMinYLimit, keySeaLevel:
			last[name] = v
		}
		return true
	})

	decodeInt(last[keyMaxWorldHeight], keyMaxWorldHeight, &cfg.MaxWorldHeight)
	decodeInt(last[keyMinYLimit], keyMinYLimit, &cfg.MinYLimit)
	decodeInt(last[keySeaLevel], keySeaLevel, &cfg.SeaLevel)
	return cfg, true
}

func decodeInt(r gjson.Result, key string, dst *int) {
	if !r.Exists() {
		return
	}
	if r.Type != gjson.Number {
		log.WarningLog.Printf("ignoring %s: expected a number, got %s", key, r.Raw)
		return
	}

	f := r.Float()
	if f != math.Trunc(f) {
		log.WarningLog.Printf("ignoring %s: %s is not an integer", key, r.Raw)
		return
	}
	// Out of range values are clamped later; only keep them representable.
	switch {
	case f > math.MaxInt32:
		*dst = math.MaxInt32
	case f < math.MinInt32:
		*dst = math.MinInt32
	default:
		*dst = int(f)
	}
}

// encodeConfiguration writes cfg over existing, keeping any keys it does not
// own so hand-added fields survive a save. Every copy of an owned key is
// replaced, so no reader can pick up a stale duplicate. existing may be empty
// or invalid.
func encodeConfiguration(existing []byte, cfg Configuration) ([]byte, error) {
	out := []byte("{}")
	if gjson.ValidBytes(existing) && gjson.ParseBytes(existing).IsObject() {
		out = existing
	}

	fields := []struct {
		key   string
		value int
	}{
		{keyMaxWorldHeight, cfg.MaxWorldHeight},
		{keyMinYLimit, cfg.MinYLimit},
		{keySeaLevel, cfg.SeaLevel},
	}
	for _, f := range fields {
		var err error
		for gjson.GetBytes(out, f.key).Exists() {
			if out, err = sjson.DeleteBytes(out, f.key); err != nil {
				return nil, fmt.Errorf("failed to remove %s: %w", f.key, err)
			}
		}
		out, err = sjson.SetBytes(out, f.key, f.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", f.key, err)
		}
	}

	return pretty.Pretty(out), nil
}
