// Package patterns is a set of small, explicit implementations of classic
// object-oriented design patterns, written the Go way.
//
// The centerpiece is the single-instance access protocol:
//
//   - singleton: Eager, Lazy, OnFirstUse and Fallible holders. One instance per
//     holder, the same pointer for every caller, construction at most once even
//     under concurrent first access.
//
// The companion packages are thin illustrations of delegation and indirection:
//
//   - proxy: deferred construction of an expensive delegate
//   - observer: fan-out notification in registration order
//   - builder: step-by-step assembly with one typed validation error
//   - factory: Factory Method and Abstract Factory
//   - adapter, strategy: interface-based dispatch
//
// Wiring stays explicit. Build holders and collaborators once in your
// composition root (main/bootstrap) and pass them down; package di resolves
// optional collaborators such as metrics while wiring.
//
// See also:
//   - cmd/patterns: CLI that lists and runs every demonstration
//   - internal/demo: the runnable scenarios behind the CLI
package patterns
