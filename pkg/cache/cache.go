// Package cache stores encoded parse results keyed by source content.
//
// Parsing is deterministic: the same source text, comment character and
// program version always yield the same shapes and diagnostics. The CLI and
// HTTP service therefore cache the encoded JSON document of each parse and
// skip the parser entirely on a hit.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP service
//   - [NullCache]: never stores anything, for --no-cache and tests
//
// # Keys
//
// Keys are built by a [Keyer] so that all backends agree on the layout:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ParseKey(cache.Hash(src), cache.ParseKeyOpts{CommentChar: "#"})
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Default TTLs.
const (
	// ParseTTL is how long a parse result stays cached.
	ParseTTL = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Keyer builds cache keys.
type Keyer interface {
	// ParseKey returns the key of a parse result for source content with
	// the given hash.
	ParseKey(contentHash string, opts ParseKeyOpts) string
}

// ParseKeyOpts are the inputs besides the source text that affect a parse.
type ParseKeyOpts struct {
	CommentChar string
	Version     string
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key layout.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ParseKey returns "parse:<sha256 of hash and options>".
func (DefaultKeyer) ParseKey(contentHash string, opts ParseKeyOpts) string {
	return "parse:" + digest(contentHash, opts.CommentChar, opts.Version)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digest hashes parts with a separator that cannot occur in them.
func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
