package cache

// ScopedKeyer wraps a Keyer with a prefix so that several programs can
// share one backend without colliding, for example the CLI and the HTTP
// service on the same Redis instance.
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "overlay:server:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ParseKey generates a prefixed key for parse result caching.
func (k *ScopedKeyer) ParseKey(contentHash string, opts ParseKeyOpts) string {
	return k.prefix + k.inner.ParseKey(contentHash, opts)
}
