package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigNonExistentFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoadConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Scenario.Name = "market"
	cfg.Scenario.Policy = "profit"
	cfg.Output.Verbose = true

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  addr: ${TEST_METRICS_ADDR}\n"), 0644))

	t.Setenv("TEST_METRICS_ADDR", ":9999")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Metrics.Addr)
}

func TestExampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ExampleConfig()), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "woodcutter", cfg.Scenario.Name)
	assert.Equal(t, "constant", cfg.Scenario.Policy)
}
