// Package config holds the runtime settings of the grubpass pipeline
// and their layered loading: defaults, then an optional JSON file, then
// command-line flags. Later sources take precedence.
package config

import "fmt"

// Config holds the derivation parameters for one run.
//
// Fields:
//   - IterationCount: number of PBKDF2 iterations.
//   - BufLen: length in bytes of the derived key material.
//   - SaltLen: length in bytes of the generated salt.
type Config struct {
	IterationCount uint64
	BufLen         int
	SaltLen        int
}

// LoadDefaults populates c with the standard GRUB parameters.
func (c *Config) LoadDefaults() {
	c.IterationCount = 10000
	c.BufLen = 64
	c.SaltLen = 64
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if a config file was given) and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects parameter combinations the pipeline must never run
// with.
func (c *Config) Validate() error {
	if c.IterationCount == 0 {
		return fmt.Errorf("iteration count must be positive")
	}
	if c.BufLen <= 0 {
		return fmt.Errorf("hash length must be positive, got %d", c.BufLen)
	}
	if c.SaltLen <= 0 {
		return fmt.Errorf("salt length must be positive, got %d", c.SaltLen)
	}
	return nil
}
