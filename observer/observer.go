// Package observer fans a published value out to registered listeners.
//
// Delivery happens in registration order. A listener detached before a publish
// does not receive it; a listener attached after a publish only sees later ones.
//
// Publish works on a snapshot of the registrations taken when it starts, and no
// lock is held while listeners run. A listener may therefore attach or detach
// (itself or others) from inside Update; the change applies from the next publish.
package observer

import (
	"reflect"
	"sync"
)

// Listener receives published values.
type Listener[T any] interface {
	Update(v T)
}

// Publisher holds a registration list and forwards values to it.
// The zero value is ready to use. It is safe for concurrent use.
type Publisher[T any] struct {
	mu        sync.RWMutex
	listeners []Listener[T]
}

// Attach appends l to the registration list. Attaching the same listener
// twice registers it twice. A nil listener is ignored.
func (p *Publisher[T]) Attach(l Listener[T]) {
	if l == nil {
		return
	}
	p.mu.Lock()
	p.listeners = append(p.listeners, l)
	p.mu.Unlock()
}

// Detach removes every registration of l, compared by identity, and reports
// whether anything was removed. Listeners whose values cannot be compared
// (func or map values, or structs holding them) never match; use Subscribe for
// plain functions.
func (p *Publisher[T]) Detach(l Listener[T]) bool {
	if l == nil || !isComparable(l) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := make([]Listener[T], 0, len(p.listeners))
	for _, cur := range p.listeners {
		if isComparable(cur) && cur == l {
			continue
		}
		kept = append(kept, cur)
	}
	removed := len(kept) != len(p.listeners)
	p.listeners = kept
	return removed
}

// Subscribe registers fn and returns a cancel func that removes exactly this
// registration. Calling cancel more than once is a no-op.
func (p *Publisher[T]) Subscribe(fn func(T)) (cancel func()) {
	s := &funcListener[T]{fn: fn}
	p.Attach(s)
	var once sync.Once
	return func() { once.Do(func() { p.Detach(s) }) }
}

// Publish forwards v to every listener registered when the call starts.
func (p *Publisher[T]) Publish(v T) {
	p.mu.RLock()
	snapshot := make([]Listener[T], len(p.listeners))
	copy(snapshot, p.listeners)
	p.mu.RUnlock()

	for _, l := range snapshot {
		l.Update(v)
	}
}

// Len returns the number of registrations.
func (p *Publisher[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.listeners)
}

// isComparable reports whether == on v is safe. Interface fields are checked
// by their dynamic values, so a struct holding a func does not pass.
func isComparable(v any) bool { return reflect.ValueOf(v).Comparable() }

type funcListener[T any] struct {
	fn func(T)
}

func (f *funcListener[T]) Update(v T) { f.fn(v) }
