// Package cache stores derived output, such as graphviz layouts, between
// CLI runs.
//
// Boards themselves are never cached; entries are keyed by a hash of the
// input they were computed from, so a stale entry is simply never asked for
// again.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// TopologyTTL is how long a laid-out track graph is kept.
const TopologyTTL = 7 * 24 * time.Hour

// TopologyKey returns the cache key of the SVG laid out from dot.
func TopologyKey(dot string) string {
	return layoutKey("topology", "svg", dot)
}
