// Package config loads and saves the YAML run configuration used by the
// goap-demo CLI to select a scenario and tune the planner's reporting.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the demo application's configuration.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Output   OutputConfig   `yaml:"output"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ScenarioConfig selects which scenario to run and how.
type ScenarioConfig struct {
	Name   string `yaml:"name"`   // registered scenario name, e.g. "woodcutter"
	Policy string `yaml:"policy"` // constant, dynamic, all, profit
}

// OutputConfig controls how run output is reported.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Verbose   bool   `yaml:"verbose"`
}

// MetricsConfig controls optional Prometheus metrics. Enabled registers a
// collector with the default Prometheus registry for the run; goap-demo
// starts no HTTP listener, so Addr is not used.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scenario: ScenarioConfig{
			Name:   "woodcutter",
			Policy: "constant",
		},
		Output: OutputConfig{
			Directory: "./output",
			Verbose:   false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

// LoadConfig loads configuration from a YAML file, falling back to defaults
// for any field the file doesn't set and for a path that doesn't exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables, e.g. metrics.addr: ${METRICS_ADDR}.
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file, creating its directory if
// necessary.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExampleConfig returns a commented example config for `goap-demo config init`.
func ExampleConfig() string {
	return `# goap-demo configuration file
# Priority: CLI flags > config file > defaults
# ${VAR} references in this file are expanded from the environment.

scenario:
  # Registered scenario name: single-step, woodcutter, courier, market, bouquet-and-picnic
  name: woodcutter

  # Selection policy: constant, dynamic, all, profit
  policy: constant

output:
  directory: ./output
  verbose: false

metrics:
  # Register a Prometheus collector for the run (addr is not served)
  enabled: false
  addr: ":9090"
`
}
