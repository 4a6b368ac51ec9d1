package bootstrap

import (
	"fmt"
	"os"
	"sort"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

// AdapterConfig is one adapter entry in the YAML configuration.
type AdapterConfig struct {
	// Type is the adapter type identifier. Aliases from the known-adapter
	// registry resolve to their canonical id.
	Type string `yaml:"type"`
	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty"`
	// Priority overrides the registration's default when non-zero.
	Priority int `yaml:"priority,omitempty"`
	// Settings holds the adapter's configuration keys.
	Settings map[string]string `yaml:"settings,omitempty"`
}

// IsEnabled applies the enabled-by-default rule.
func (a AdapterConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// SettingKeys returns the configured setting names, sorted.
func (a AdapterConfig) SettingKeys() []string {
	keys := make([]string, 0, len(a.Settings))
	for k := range a.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Config is the full adapter configuration file.
type Config struct {
	Adapters []AdapterConfig `yaml:"adapters"`
	// Preferred maps capability tags to the adapter type that should serve
	// them when compatible.
	Preferred map[string]string `yaml:"preferred,omitempty"`
	Logging   LoggingConfig     `yaml:"logging,omitempty"`
}

// ParseConfig decodes a YAML configuration document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse adapter configuration: %w", err)
	}
	for i, a := range cfg.Adapters {
		if a.Type == "" {
			return nil, fmt.Errorf("adapter entry %d has no type", i)
		}
	}
	for cap := range cfg.Preferred {
		if _, ok := ecmcapabilities.ParseCapability(cap); !ok {
			return nil, fmt.Errorf("preferred entry references unknown capability %q", cap)
		}
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read adapter configuration: %w", err)
	}
	return ParseConfig(data)
}

// PreferredTypes resolves the preferred map onto typed keys, canonicalizing
// adapter aliases. Entries for unknown capabilities never survive ParseConfig.
func (c *Config) PreferredTypes() map[ecmcapabilities.Capability]ecmcapabilities.AdapterID {
	out := make(map[ecmcapabilities.Capability]ecmcapabilities.AdapterID, len(c.Preferred))
	for capName, typeName := range c.Preferred {
		cap, ok := ecmcapabilities.ParseCapability(capName)
		if !ok {
			continue
		}
		if id, ok := ecmcapabilities.ParseID(typeName); ok {
			out[cap] = id
			continue
		}
		// Custom adapter types are allowed; they just have no alias table.
		out[cap] = ecmcapabilities.AdapterID(typeName)
	}
	return out
}

// Environment holds process-environment overrides for the configuration file.
type Environment struct {
	ConfigPath string `env:"ECM_CONFIG_PATH" envDefault:"ecm.yaml"`
	LogLevel   string `env:"ECM_LOG_LEVEL"`
	NoColor    bool   `env:"ECM_NO_COLOR"`
}

// LoadEnvironment parses the ECM_* environment variables.
func LoadEnvironment() (*Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &e, nil
}

// ApplyEnvironment overlays environment overrides onto the file configuration.
func (c *Config) ApplyEnvironment(e *Environment) {
	if e == nil {
		return
	}
	if e.LogLevel != "" {
		c.Logging.Level = e.LogLevel
	}
}
