// Package cache stores rendered artifacts so repeated renders of the same tree
// skip Graphviz.
//
// # Backends
//
// Three implementations share the [Cache] interface:
//   - [FileCache]: JSON entries under a directory, for CLI usage
//   - [RedisCache]: a Redis server, for sharing a cache between machines
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// Keys are built by a [Keyer]. The default keyer hashes the DOT source and
// the output options, so a change to either produces a new key:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{Format: "svg"})
//
// Scoping keys by release keeps artifacts from different versions apart.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired
	// entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
