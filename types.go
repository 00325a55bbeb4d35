package halyard

import (
	"context"
	"errors"
	"time"
)

// Source provides configuration data from one origin (env vars, files, remote stores).
// Keys must be normalized to lowercase dot-separated paths (e.g., "database.host").
type Source interface {
	// Collect returns the source's contribution as a flat map of typed values.
	// Missing optional backends should return an empty map rather than an error.
	Collect(ctx context.Context) (Map, error)

	// Name returns a human-readable identifier used in diagnostics.
	Name() string

	// Watch emits ChangeEvent when the backend changes. Returns ErrWatchNotSupported
	// if the source cannot observe changes.
	Watch(ctx context.Context) (<-chan ChangeEvent, error)
}

// ChangeEvent notifies of configuration changes.
type ChangeEvent struct {
	At    time.Time
	Cause string // Description (e.g., "file-changed")
}

// ErrWatchNotSupported is returned when watching is not supported.
var ErrWatchNotSupported = errors.New("halyard: watch not supported by this source")

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some wraps a value as a set Optional.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}
