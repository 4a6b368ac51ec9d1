package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

const sampleConfig = `
adapters:
  - type: s3
    priority: 10
    settings:
      bucket: contracts
      region: eu-west-1
  - type: docusign
    enabled: false
    settings:
      account_id: acc-1
      integration_key: key-1
preferred:
  content-storage: s3
logging:
  level: debug
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Adapters, 2)
	assert.Equal(t, "s3", cfg.Adapters[0].Type)
	assert.Equal(t, 10, cfg.Adapters[0].Priority)
	assert.True(t, cfg.Adapters[0].IsEnabled(), "enabled defaults to true")
	assert.Equal(t, []string{"bucket", "region"}, cfg.Adapters[0].SettingKeys())

	assert.False(t, cfg.Adapters[1].IsEnabled())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParseConfigRejectsBadInput(t *testing.T) {
	_, err := ParseConfig([]byte("adapters: [{priority: 3}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no type")

	_, err = ParseConfig([]byte("preferred: {no-such-capability: s3}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown capability")

	_, err = ParseConfig([]byte(":::not yaml"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Adapters, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPreferredTypesResolvesAliases(t *testing.T) {
	cfg := &Config{Preferred: map[string]string{
		"content-storage": "aws-s3",
		"search":          "my-custom-search",
	}}

	prefs := cfg.PreferredTypes()
	assert.Equal(t, ecmcapabilities.S3, prefs[ecmcapabilities.CapContentStorage])
	assert.Equal(t, ecmcapabilities.AdapterID("my-custom-search"), prefs[ecmcapabilities.CapSearch])
}

func TestApplyEnvironment(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "info"}}

	cfg.ApplyEnvironment(&Environment{LogLevel: "error"})
	assert.Equal(t, "error", cfg.Logging.Level)

	cfg.ApplyEnvironment(&Environment{})
	assert.Equal(t, "error", cfg.Logging.Level, "empty override keeps the file value")

	cfg.ApplyEnvironment(nil)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ECM_CONFIG_PATH", "/etc/ecm/adapters.yaml")
	t.Setenv("ECM_LOG_LEVEL", "warn")

	e, err := LoadEnvironment()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ecm/adapters.yaml", e.ConfigPath)
	assert.Equal(t, "warn", e.LogLevel)
}
