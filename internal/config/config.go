// Package config holds server settings read from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
)

// Config holds server configuration.
type Config struct {
	Port        int
	CacheSize   int
	Assumptions string
	PresetsDir  string
	Debug       bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:        3000,
		CacheSize:   1024,
		Assumptions: assumptions.DefaultVersion,
	}
}

// Load reads PHASEOUT_* environment variables over the defaults.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Port, err = envInt(getenv, "PHASEOUT_PORT", cfg.Port); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize, err = envInt(getenv, "PHASEOUT_CACHE_SIZE", cfg.CacheSize); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = envBool(getenv, "PHASEOUT_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	cfg.Assumptions = envString(getenv, "PHASEOUT_ASSUMPTIONS", cfg.Assumptions)
	cfg.PresetsDir = envString(getenv, "PHASEOUT_PRESETS_DIR", cfg.PresetsDir)

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can start a server.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache size must be at least 1, got %d", c.CacheSize)
	}
	if _, err := assumptions.Lookup(c.Assumptions); err != nil {
		return err
	}
	return nil
}

func envString(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(getenv func(string) string, key string, def bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
