// Package dedupe tracks normalized join keys so the merge can detect
// duplicate names instead of silently multiplying rows.
package dedupe

import (
	"context"
)

// Tracker records seen join keys. The pipeline is a single synchronous
// pass, so implementations need not be safe for concurrent use.
type Tracker interface {
	// SeenAndRecord checks whether key was seen and records it if not.
	// Returns true if key was already seen, false if newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of distinct keys recorded so far.
	Size() int
}

// inMemoryTracker implements Tracker with a plain map; a franchise
// roster is small enough that no eviction is ever needed.
type inMemoryTracker struct {
	seen map[string]struct{}
}

// Option applies a configuration option to the in-memory tracker.
type Option func(*inMemoryTracker)

// WithCapacityHint presizes the key map for the expected roster size.
func WithCapacityHint(n int) Option {
	return func(t *inMemoryTracker) {
		if n > 0 {
			t.seen = make(map[string]struct{}, n)
		}
	}
}

// NewInMemoryTracker creates a new in-memory key tracker.
func NewInMemoryTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{seen: make(map[string]struct{})}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *inMemoryTracker) SeenAndRecord(_ context.Context, key string) bool {
	if _, ok := t.seen[key]; ok {
		return true
	}
	t.seen[key] = struct{}{}
	return false
}

func (t *inMemoryTracker) Size() int {
	return len(t.seen)
}
