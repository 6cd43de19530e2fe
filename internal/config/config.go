package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/aidemo/internal/parser"
	"github.com/dgallion1/aidemo/internal/retrieval"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Logging
	LogLevel  string
	LogFormat string

	// Corpus
	CorpusFile string
	Topics     []retrieval.Topic

	// Simulated model latency for Q&A answers
	AnswerDelay time.Duration

	// Answer cache
	CacheDriver     string
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisRetries    int

	// Request limits
	MaxBodyBytes  int64
	MaxInputChars int

	// Latency stats window
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

// FileConfig is the optional YAML overlay named by CONFIG_FILE.
type FileConfig struct {
	CorpusFile string            `yaml:"corpus_file"`
	Topics     []retrieval.Topic `yaml:"topics"`
}

// Load reads an optional .env file, then the environment, then the optional
// YAML overlay. Environment variables already set win over .env entries.
func Load() (Config, error) {
	envFile := envOr("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("API_KEY"),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),

		CorpusFile: os.Getenv("CORPUS_FILE"),

		AnswerDelay: envDuration("ANSWER_DELAY", 0),

		CacheDriver:     strings.ToLower(envOr("CACHE_DRIVER", "none")),
		CacheTTL:        envDuration("CACHE_TTL", 10*time.Minute),
		CacheMaxEntries: envInt("CACHE_MAX_ENTRIES", 1000),
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		RedisRetries:    envInt("REDIS_CONNECT_RETRIES", 3),

		MaxBodyBytes:  envInt64("MAX_BODY_BYTES", 65536), // 64KB
		MaxInputChars: envInt("MAX_INPUT_CHARS", 2000),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.CacheMaxEntries <= 0 {
		cfg.CacheMaxEntries = 1000
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 65536
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = 2000
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.apply(fc)
	}

	return cfg, nil
}

// LoadFile parses a YAML overlay.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// apply overlays file settings. CORPUS_FILE from the environment takes
// precedence over the file.
func (c *Config) apply(fc FileConfig) {
	if c.CorpusFile == "" {
		c.CorpusFile = fc.CorpusFile
	}
	if len(fc.Topics) > 0 {
		c.Topics = fc.Topics
	}
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch c.CacheDriver {
	case "none", "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_DRIVER=redis")
		}
	default:
		return fmt.Errorf("CACHE_DRIVER must be none, memory or redis, got %q", c.CacheDriver)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	if c.AnswerDelay < 0 {
		return fmt.Errorf("ANSWER_DELAY must not be negative")
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.CorpusFile != "" && !parser.IsSupportedExtension(c.CorpusFile) {
		return fmt.Errorf("CORPUS_FILE has an unsupported extension: %s", c.CorpusFile)
	}
	for i, t := range c.Topics {
		if strings.TrimSpace(t.Label) == "" {
			return fmt.Errorf("topic %d: label is required", i)
		}
		if len(t.Keywords) == 0 {
			return fmt.Errorf("topic %q: at least one keyword is required", t.Label)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
