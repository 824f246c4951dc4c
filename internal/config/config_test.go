package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty directory so no stray basket.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(PathEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Mining.MinSupport)
	assert.Equal(t, 0.5, cfg.Mining.MinConfidence)
	assert.Equal(t, AlgorithmApriori, cfg.Mining.Algorithm)
	assert.False(t, cfg.Mining.Strict)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 4, cfg.Server.MaxItemsetLength)
	assert.Equal(t, 30*time.Second, cfg.Server.MineTimeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mining:
  min_support: 0.3
  algorithm: eclat
  subset_pruning: true
server:
  addr: ":9000"
  mine_timeout: 5s
`), 0o600))

	t.Setenv("BASKET_MINING_MIN_SUPPORT", "0.25")
	t.Setenv("BASKET_SERVER_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("BASKET_SERVER_MAX_ITEMSET_LENGTH", "6")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Mining.MinSupport, "env beats file")
	assert.Equal(t, AlgorithmEclat, cfg.Mining.Algorithm)
	assert.True(t, cfg.Mining.SubsetPruning)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.MineTimeout)
	assert.Equal(t, 6, cfg.Server.MaxItemsetLength)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 0.5, cfg.Mining.MinConfidence, "untouched keys keep defaults")
}

func TestLoad_DefaultFileName(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv(PathEnvVar, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basket.yaml"), []byte("logging:\n  level: debug\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero support", func(c *Config) { c.Mining.MinSupport = 0 }},
		{"support above one", func(c *Config) { c.Mining.MinSupport = 1.2 }},
		{"negative confidence", func(c *Config) { c.Mining.MinConfidence = -0.1 }},
		{"unknown algorithm", func(c *Config) { c.Mining.Algorithm = "fp-growth" }},
		{"negative max length", func(c *Config) { c.Mining.MaxLength = -1 }},
		{"blank addr", func(c *Config) { c.Server.Addr = " " }},
		{"negative itemset cap", func(c *Config) { c.Server.MaxItemsetLength = -1 }},
		{"negative mine timeout", func(c *Config) { c.Server.MineTimeout = -time.Second }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "mining.min_support", envKey("BASKET_MINING_MIN_SUPPORT"))
	assert.Equal(t, "data.bolt_path", envKey("BASKET_DATA_BOLT_PATH"))
	assert.Equal(t, "config", envKey("BASKET_CONFIG"))
}
