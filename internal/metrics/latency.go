package metrics

import (
	"slices"
	"sync"
	"time"
)

// Summary aggregates the calls seen in one demo's window. Durations are in
// fractional milliseconds since most demo calls finish well under 1ms.
type Summary struct {
	Calls  int     `json:"calls"`
	Errors int     `json:"errors"`
	MinMs  float64 `json:"min_ms"`
	MaxMs  float64 `json:"max_ms"`
	MeanMs float64 `json:"mean_ms"`
	P50Ms  float64 `json:"p50_ms"`
	P95Ms  float64 `json:"p95_ms"`
	P99Ms  float64 `json:"p99_ms"`
}

type call struct {
	at     time.Time
	took   time.Duration
	failed bool
}

// Window keeps the calls made within the last span. Calls arrive in time
// order, so expiry only ever trims the front.
type Window struct {
	mu    sync.Mutex
	span  time.Duration
	calls []call
	now   func() time.Time
}

// NewWindow returns a window covering span. Non-positive spans mean one hour.
func NewWindow(span time.Duration) *Window {
	if span <= 0 {
		span = time.Hour
	}
	return &Window{span: span, now: time.Now}
}

// Add records one call.
func (w *Window) Add(took time.Duration, failed bool) {
	took = max(took, 0)

	w.mu.Lock()
	defer w.mu.Unlock()
	now := w.now()
	w.expire(now)
	w.calls = append(w.calls, call{at: now, took: took, failed: failed})
}

// Summary aggregates the calls still inside the window.
func (w *Window) Summary() Summary {
	w.mu.Lock()
	w.expire(w.now())
	took := make([]time.Duration, len(w.calls))
	var failed int
	for i, c := range w.calls {
		took[i] = c.took
		if c.failed {
			failed++
		}
	}
	w.mu.Unlock()

	if len(took) == 0 {
		return Summary{}
	}
	slices.Sort(took)

	var total time.Duration
	for _, d := range took {
		total += d
	}
	return Summary{
		Calls:  len(took),
		Errors: failed,
		MinMs:  ms(took[0]),
		MaxMs:  ms(took[len(took)-1]),
		MeanMs: ms(total) / float64(len(took)),
		P50Ms:  ms(quantile(took, 0.50)),
		P95Ms:  ms(quantile(took, 0.95)),
		P99Ms:  ms(quantile(took, 0.99)),
	}
}

func (w *Window) expire(now time.Time) {
	cutoff := now.Add(-w.span)
	i, _ := slices.BinarySearchFunc(w.calls, cutoff, func(c call, t time.Time) int {
		return c.at.Compare(t)
	})
	if i > 0 {
		w.calls = slices.Delete(w.calls, 0, i)
	}
}

// quantile interpolates between the closest ranks of a sorted slice.
func quantile(sorted []time.Duration, q float64) time.Duration {
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[lo+1]-sorted[lo]))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// LatencyBoard keeps one Window per demo.
type LatencyBoard struct {
	mu      sync.RWMutex
	span    time.Duration
	windows map[string]*Window
}

func NewLatencyBoard(span time.Duration) *LatencyBoard {
	return &LatencyBoard{span: span, windows: make(map[string]*Window)}
}

// Record adds a call for demo, opening its window on first use.
func (b *LatencyBoard) Record(demo string, took time.Duration, err error) {
	b.window(demo).Add(took, err != nil)
}

func (b *LatencyBoard) window(demo string) *Window {
	b.mu.RLock()
	w, ok := b.windows[demo]
	b.mu.RUnlock()
	if ok {
		return w
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok = b.windows[demo]; !ok {
		w = NewWindow(b.span)
		b.windows[demo] = w
	}
	return w
}

// Snapshot summarizes every demo seen so far.
func (b *LatencyBoard) Snapshot() map[string]Summary {
	b.mu.RLock()
	windows := make(map[string]*Window, len(b.windows))
	for demo, w := range b.windows {
		windows[demo] = w
	}
	b.mu.RUnlock()

	out := make(map[string]Summary, len(windows))
	for demo, w := range windows {
		out[demo] = w.Summary()
	}
	return out
}
