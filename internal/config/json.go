package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/grubpass/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields stay at their zero value and do not override the defaults.
type JSONConfig struct {
	IterationCount uint64 `json:"iteration_count"`
	BufLen         int    `json:"buflen"`
	SaltLen        int    `json:"saltlen"`
}

// parseJSON overlays cfg with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JSONConfigFlags; when neither is given, nothing is loaded.
// Only fields present (non-zero) in the file override cfg. Intended
// usage is defaults -> parseJSON -> parseFlags, later stages winning.
func parseJSON(cfg *Config) error {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", jsonConfigFile, err)
	}

	if jc.IterationCount != 0 {
		cfg.IterationCount = jc.IterationCount
	}
	if jc.BufLen != 0 {
		cfg.BufLen = jc.BufLen
	}
	if jc.SaltLen != 0 {
		cfg.SaltLen = jc.SaltLen
	}
	return nil
}
