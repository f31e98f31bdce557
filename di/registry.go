package di

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Registry provides optional dependencies at build time.
//
// It is intentionally:
// - read-only
// - side effect free
// - build-time only
//
// Expected usage:
//
//	val, ok, err := reg.Resolve(cfg, "patterns.metrics")
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MissingDependencyError is returned when a key is not present in the registry.
type MissingDependencyError struct{ Key string }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: dependency "patterns.logger" missing
	return "di: dependency " + strconv.Quote(e.Key) + " missing"
}

// WrongTypeDependencyError is returned when a key is present but holds a
// value of a different type than requested.
type WrongTypeDependencyError struct {
	// Key is the dependency key requested.
	Key string

	// WantType is the requested type.
	WantType string

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "patterns.metrics" has wrong type (string, want *metrics.Constructions)
	return "di: dependency " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ", want " + e.WantType + ")"
}

// MapRegistry is a simple in-memory registry. It is safe for concurrent use.
// It ignores cfg (but keeps it in the signature so future registries can use it).
type MapRegistry struct {
	mu    sync.RWMutex
	items map[string]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores a value under a key and returns the registry for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.mu.Lock()
	r.items[key] = val
	r.mu.Unlock()
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok, nil
}

// Get returns the value if present (no panic).
func (r *MapRegistry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok
}

// MustGet returns the value or panics with a helpful message.
// Useful in examples/tests where missing registry keys should fail fast.
func (r *MapRegistry) MustGet(key string) any {
	v, ok := r.Get(key)
	if !ok {
		panic(fmt.Errorf("di: registry missing key %q", key))
	}
	return v
}

// ResolveAs resolves key from r and asserts it to T.
//
// It returns:
//   - MissingDependencyError if r is nil or the key is not present (or holds nil)
//   - WrongTypeDependencyError if the stored value is not a T
//   - the registry's own error (e.g. ErrRegistryPanic) unchanged
func ResolveAs[T any](r Registry, cfg any, key string) (T, error) {
	var zero T
	if r == nil {
		return zero, MissingDependencyError{Key: key}
	}
	raw, ok, err := r.Resolve(cfg, key)
	if err != nil {
		return zero, err
	}
	if !ok || raw == nil {
		return zero, MissingDependencyError{Key: key}
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeDependencyError{
			Key:      key,
			WantType: reflect.TypeOf((*T)(nil)).Elem().String(),
			GotType:  reflect.TypeOf(raw).String(),
		}
	}
	return v, nil
}

// ResolveOr is ResolveAs that falls back to def on any error.
func ResolveOr[T any](r Registry, cfg any, key string, def T) T {
	v, err := ResolveAs[T](r, cfg, key)
	if err != nil {
		return def
	}
	return v
}
