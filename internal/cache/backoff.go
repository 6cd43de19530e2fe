package cache

import (
	"math/rand"
	"time"
)

const (
	backoffBase = 200 * time.Millisecond
	backoffMax  = 5 * time.Second
)

// Backoff returns a duration for attempt n (0-indexed) with up to 50% jitter.
func Backoff(attempt int) time.Duration {
	if attempt > 10 {
		attempt = 10
	}
	base := backoffBase << uint(attempt)
	if base > backoffMax {
		base = backoffMax
	}
	jitter := time.Duration(rand.Int63n(int64(base) / 2))
	return base + jitter
}
