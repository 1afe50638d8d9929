package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quadra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, MethodRomberg, cfg.Method)
	assert.Equal(t, "sinsqrt", cfg.Integrand)
	assert.Equal(t, 1e-6, cfg.Epsilon)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `method: simpson
integrand: poly
epsilon: 1.0e-8
base: 1024
max: 1048576
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MethodSimpson, cfg.Method)
	assert.Equal(t, "poly", cfg.Integrand)
	assert.Equal(t, 1e-8, cfg.Epsilon)
	assert.Equal(t, 1024, cfg.Base)
	assert.Equal(t, 1<<20, cfg.Max)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "method: simpson\nepsilon: 1.0e-3\n")
	t.Setenv("QUADRA_METHOD", "gauss")
	t.Setenv("QUADRA_EPSILON", "1e-10")
	t.Setenv("QUADRA_SLICES", "50")
	t.Setenv("QUADRA_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MethodGauss, cfg.Method)
	assert.Equal(t, 1e-10, cfg.Epsilon)
	assert.Equal(t, 50, cfg.Slices)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "method: [unclosed\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "method: monte-carlo\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(t.TempDir())
	assert.Error(t, err, "directories are rejected")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown method", func(c *Config) { c.Method = "midpoint" }},
		{"empty integrand", func(c *Config) { c.Integrand = "" }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }},
		{"infinite epsilon", func(c *Config) { c.Epsilon = math.Inf(1) }},
		{"negative slices", func(c *Config) { c.Slices = -2 }},
		{"base above max", func(c *Config) { c.Base, c.Max = 128, 64 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "epsilon", envKey("QUADRA_EPSILON"))
	assert.Equal(t, "log.level", envKey("QUADRA_LOG_LEVEL"))
	assert.Equal(t, "log.format", envKey("QUADRA_LOG_FORMAT"))
}

func TestIsMethod(t *testing.T) {
	for _, m := range Methods {
		assert.True(t, IsMethod(m))
	}
	assert.False(t, IsMethod("GAUSS"))
}
