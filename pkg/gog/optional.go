package gog

// Optional is a shape attribute together with its provenance.
//
// Every optional attribute of a finalized shape is an Optional. When the
// attribute appeared in the source text, Get returns the parsed value and
// true. Otherwise Get returns the documented default for the shape kind and
// false. The value is always valid, so callers that do not care about
// provenance can use Value directly.
type Optional[T any] struct {
	value T
	set   bool
}

// explicit wraps a value that was present in the source text.
func explicit[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// fallback wraps a default value.
func fallback[T any](v T) Optional[T] { return Optional[T]{value: v} }

// Get returns the value and whether it was explicitly set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// Value returns the explicit value or the default.
func (o Optional[T]) Value() T { return o.value }

// IsSet reports whether the value was explicitly present in the source text.
func (o Optional[T]) IsSet() bool { return o.set }
