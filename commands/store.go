package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ByteMirror/worldheight/config"
)

// ConfigDirFlag overrides the configuration directory for every command.
var ConfigDirFlag string

// openStore returns the process-wide store unless --config-dir points
// somewhere else.
func openStore() (*config.Store, error) {
	if ConfigDirFlag == "" {
		return config.Instance(), nil
	}
	path, err := config.ResolvePath(ConfigDirFlag)
	if err != nil {
		return nil, err
	}
	return config.NewLoader(path).Get(), nil
}

type storeView struct {
	Path string `json:"path"`
	config.Configuration
	TotalWorldHeight int `json:"total_world_height"`
}

func printStore(w io.Writer, s *config.Store) error {
	cfg := s.Snapshot()
	data, err := json.MarshalIndent(storeView{
		Path:             s.Path(),
		Configuration:    cfg,
		TotalWorldHeight: cfg.TotalWorldHeight(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
