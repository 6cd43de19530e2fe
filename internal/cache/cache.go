// Package cache stores rendered Q&A answers keyed by question.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCacheMiss indicates a cache miss.
var ErrCacheMiss = errors.New("cache miss")

// Client defines the cache interface.
type Client interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Drivers accepted by New.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config selects and configures a cache driver.
type Config struct {
	Driver     string
	MaxEntries int
	Redis      RedisConfig
}

// New builds the configured client. DriverNone (or empty) returns a nil
// Client, which callers treat as caching disabled.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverNone:
		return nil, nil
	case DriverMemory:
		return NewMemoryClient(cfg.MaxEntries), nil
	case DriverRedis:
		c, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

// Key derives a stable cache key from a question within scope. Case and
// surrounding or repeated whitespace in the question do not change the key;
// a different scope always does.
func Key(scope, question string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(question)), " ")
	sum := sha256.Sum256([]byte(scope + "\x00" + normalized))
	return "qa:" + hex.EncodeToString(sum[:])
}

// Fingerprint hashes parts into a short scope identifier.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
