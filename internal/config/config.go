package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds CLI front-end preferences. The category table is
// deliberately not configurable; this file only tunes presentation and
// locking.
type Config struct {
	// Format is the default output format for run results: text, json
	// or yaml.
	Format string `toml:"format"`
	// NoLock skips the per-folder run lock.
	NoLock bool `toml:"no_lock"`
}

func Default() Config {
	return Config{Format: "text"}
}

// Load reads the preferences file at path. A missing file yields the
// defaults; a malformed file or an unknown format value is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case "", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text, json or yaml)", c.Format)
	}
}
