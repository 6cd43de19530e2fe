package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/aidemo/internal/retrieval"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_DRIVER", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("MAX_BODY_BYTES", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "none", cfg.CacheDriver)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.Topics)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_DRIVER", "Redis")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("ANSWER_DELAY", "250ms")
	t.Setenv("MAX_BODY_BYTES", "-5")
	t.Setenv("REDIS_DB", "notanumber")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "redis", cfg.CacheDriver)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.AnswerDelay)
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "AIDEMO_TEST_ONLY=1\nLOG_FORMAT=console\n")
	t.Setenv("ENV_FILE", path)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "7000")
	t.Cleanup(func() {
		os.Unsetenv("AIDEMO_TEST_ONLY")
		os.Unsetenv("LOG_FORMAT")
	})
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "1", os.Getenv("AIDEMO_TEST_ONLY"))
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := writeFile(t, "aidemo.yaml", `
corpus_file: docs/guide.md
topics:
  - topic: pricing
    keywords: [fee, discount]
  - topic: support
    keywords: [sla]
`)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("CORPUS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "docs/guide.md", cfg.CorpusFile)
	require.Len(t, cfg.Topics, 2)
	assert.Equal(t, "pricing", cfg.Topics[0].Label)
	assert.Equal(t, []string{"fee", "discount"}, cfg.Topics[0].Keywords)
}

func TestLoad_EnvCorpusBeatsYAML(t *testing.T) {
	path := writeFile(t, "aidemo.yaml", "corpus_file: from-yaml.md\n")
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("CORPUS_FILE", "from-env.txt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.CorpusFile)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "topics: [unclosed\n")
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.ErrorContains(t, err, "parse config file")
}

func TestLoad_MissingYAML(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "read config file")
}

func validConfig() Config {
	return Config{Port: "8090", CacheDriver: "none", LogFormat: "json", RedisAddr: "localhost:6379"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"no port", func(c *Config) { c.Port = "" }, "PORT is required"},
		{"bad driver", func(c *Config) { c.CacheDriver = "memcached" }, "CACHE_DRIVER"},
		{"redis without addr", func(c *Config) { c.CacheDriver = "redis"; c.RedisAddr = "" }, "REDIS_ADDR"},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, "CACHE_TTL"},
		{"negative delay", func(c *Config) { c.AnswerDelay = -time.Second }, "ANSWER_DELAY"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"unsupported corpus", func(c *Config) { c.CorpusFile = "guide.xlsx" }, "CORPUS_FILE"},
		{"supported corpus", func(c *Config) { c.CorpusFile = "docs/guide.md" }, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidate_Topics(t *testing.T) {
	cfg := validConfig()
	cfg.Topics = []retrieval.Topic{{Label: " ", Keywords: []string{"x"}}}
	assert.ErrorContains(t, cfg.Validate(), "label is required")

	cfg.Topics = []retrieval.Topic{{Label: "pricing"}}
	assert.ErrorContains(t, cfg.Validate(), "at least one keyword")
}
