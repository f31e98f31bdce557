package singleton

import (
	"sync"
	"sync/atomic"
)

// Eager holds an instance that is built when the holder is created.
//
// Declare it as a package var (built during package initialization) or create
// it in main before any consumer runs. Get never branches and never locks.
type Eager[T any] struct {
	noCopy noCopy

	val *T
}

// NewEager calls ctor immediately and returns the holder.
// It panics with ErrNilConstructor if ctor is nil.
func NewEager[T any](ctor func() *T, opts ...Option) *Eager[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	o := newOptions("eager", opts)
	e := &Eager[T]{val: ctor()}
	o.constructed(VariantEager)
	return e
}

// Get returns the instance.
func (e *Eager[T]) Get() *T { return e.val }

// Lazy builds its instance on the first Get.
//
// Concurrent first callers are serialized by sync.Once: a fast atomic check,
// then a mutex, then a second check before construction. Only construction is
// serialized; once built, Get is a single atomic load plus a field read.
//
// If the constructor panics the panic reaches the caller, the once is spent,
// and later calls return nil. Use Fallible when construction can fail.
type Lazy[T any] struct {
	noCopy noCopy

	once sync.Once
	done atomic.Bool
	ctor func() *T
	val  *T
	opts options
}

// NewLazy returns an uninitialized holder. ctor is not called here.
// It panics with ErrNilConstructor if ctor is nil.
func NewLazy[T any](ctor func() *T, opts ...Option) *Lazy[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	return &Lazy[T]{ctor: ctor, opts: newOptions("lazy", opts)}
}

// Get returns the instance, building it on the first call.
func (l *Lazy[T]) Get() *T {
	l.once.Do(l.build)
	return l.val
}

// Initialized reports whether the instance has been built.
func (l *Lazy[T]) Initialized() bool { return l.done.Load() }

func (l *Lazy[T]) build() {
	l.val = l.ctor()
	l.ctor = nil
	l.done.Store(true)
	l.opts.constructed(VariantLazy)
}

// OnFirstUse returns an accessor that builds the instance on its first call and
// returns the same pointer forever after.
//
// The guarantee comes from sync.OnceValue; no lock is written here. If ctor
// panics, every call of the accessor panics with the same value.
// It panics with ErrNilConstructor if ctor is nil.
func OnFirstUse[T any](ctor func() *T, opts ...Option) func() *T {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	o := newOptions("static", opts)
	return sync.OnceValue(func() *T {
		v := ctor()
		o.constructed(VariantStatic)
		return v
	})
}

// Fallible builds its instance on the first successful Get.
//
// A failed attempt returns a *ConstructionError and leaves the holder
// uninitialized, so a later Get tries again. Once an attempt succeeds the
// instance is final.
//
// The read path is a single atomic load. Construction runs under a mutex with
// a second check, so concurrent callers never build twice.
type Fallible[T any] struct {
	noCopy noCopy

	val atomic.Pointer[T]

	mu       sync.Mutex
	ctor     func() (*T, error)
	attempts int
	opts     options
}

// NewFallible returns an uninitialized holder. ctor is not called here.
// It panics with ErrNilConstructor if ctor is nil.
func NewFallible[T any](ctor func() (*T, error), opts ...Option) *Fallible[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	return &Fallible[T]{ctor: ctor, opts: newOptions("fallible", opts)}
}

// Get returns the instance, building it if no attempt has succeeded yet.
func (f *Fallible[T]) Get() (*T, error) {
	if v := f.val.Load(); v != nil {
		return v, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if v := f.val.Load(); v != nil {
		return v, nil
	}

	f.attempts++
	v, err := f.ctor()
	if err == nil && v == nil {
		err = ErrNilInstance
	}
	if err != nil {
		f.opts.log.Warn().
			Err(err).
			Str("holder", f.opts.name).
			Int("attempt", f.attempts).
			Msg("instance construction failed")
		return nil, &ConstructionError{Holder: f.opts.name, Attempt: f.attempts, Err: err}
	}

	f.val.Store(v)
	f.opts.constructed(VariantFallible)
	return v, nil
}

// MustGet returns the instance or panics with the construction error.
func (f *Fallible[T]) MustGet() *T {
	v, err := f.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Initialized reports whether an attempt has succeeded.
func (f *Fallible[T]) Initialized() bool { return f.val.Load() != nil }

// Attempts returns how many times the constructor has been called.
func (f *Fallible[T]) Attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}
