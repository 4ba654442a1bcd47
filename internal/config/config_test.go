package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, assumptions.DefaultVersion, cfg.Assumptions)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"PHASEOUT_PORT":        "8081",
		"PHASEOUT_CACHE_SIZE":  "16",
		"PHASEOUT_ASSUMPTIONS": "v1",
		"PHASEOUT_DEBUG":       "true",
		"PHASEOUT_PRESETS_DIR": "/etc/phaseout/presets",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, "v1", cfg.Assumptions)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/etc/phaseout/presets", cfg.PresetsDir)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"PHASEOUT_PORT": "http"}},
		{"port range", map[string]string{"PHASEOUT_PORT": "70000"}},
		{"bad cache", map[string]string{"PHASEOUT_CACHE_SIZE": "0"}},
		{"bad bool", map[string]string{"PHASEOUT_DEBUG": "sometimes"}},
		{"bad assumptions", map[string]string{"PHASEOUT_ASSUMPTIONS": "v7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(env(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsProcessEnv(t *testing.T) {
	t.Setenv("PHASEOUT_PORT", "4000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
}
