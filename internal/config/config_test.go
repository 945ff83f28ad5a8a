package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Generation.Rows)
	assert.Equal(t, 0.05, cfg.Generation.AddressMissingRate)
	assert.Equal(t, 0.05, cfg.Generation.BalanceMissingRate)
	assert.Equal(t, 200.0, cfg.Generation.SalaryNoiseSD)
	assert.Equal(t, 0.2, cfg.Generation.BalanceFactor)
	assert.Equal(t, 0.03, cfg.Generation.AnnualInterestRate)
	assert.Equal(t, 30*time.Second, cfg.Sources.FetchTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Every sampling stage keeps its own documented seed.
	seeds := cfg.Generation.Seeds
	assert.NotEqual(t, seeds.CustomerIDs, seeds.AccountIDs)
	assert.Equal(t, int64(11), seeds.Names)
	assert.Equal(t, int64(47), seeds.BalanceMask)
}

func TestLoadFromYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
generation:
  rows: 50
  seeds:
    names: 99
sources:
  fetch_timeout: 5s
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Generation.Rows)
	assert.Equal(t, int64(99), cfg.Generation.Seeds.Names)
	assert.Equal(t, 5*time.Second, cfg.Sources.FetchTimeout)
	// Untouched fields still pick up defaults.
	assert.Equal(t, int64(17), cfg.Generation.Seeds.CustomerIDs)
	assert.Equal(t, 0.05, cfg.Generation.BalanceMissingRate)
}

func TestLoadFromEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
generation:
  rows: 50
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	t.Setenv("BANKSYNTH_GENERATION_ROWS", "75")
	t.Setenv("BANKSYNTH_SOURCES_FETCH_TIMEOUT", "7s")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	// Env beats the file, the file beats the defaults.
	assert.Equal(t, 75, cfg.Generation.Rows)
	assert.Equal(t, 7*time.Second, cfg.Sources.FetchTimeout)
	assert.Equal(t, int64(11), cfg.Generation.Seeds.Names)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Generation.Rows = 0 }},
		{"missing rate at one", func(c *Config) { c.Generation.AddressMissingRate = 1.0 }},
		{"bad surnames url", func(c *Config) { c.Sources.SurnamesURL = "not a url" }},
		{"bad reference date", func(c *Config) { c.Generation.ReferenceDate = "01/04/2024" }},
		{"negative fetch timeout", func(c *Config) { c.Sources.FetchTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseReferenceDate(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	ref, err := cfg.Generation.ParseReferenceDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), ref)
}
