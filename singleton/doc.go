// Package singleton provides the single-instance access protocol in three
// flavors, plus a fallible variant that may retry construction.
//
// Every holder guarantees the same three things:
//
//   - at most one instance of T is ever constructed by the holder
//   - every accessor call returns a pointer to that same instance
//   - the instance is never destroyed or replaced once built
//
// They differ only in when construction happens and what guards it:
//
//   - Eager: built inside NewEager. Get is a plain field read.
//   - Lazy: built on the first Get. Concurrent first callers are serialized by
//     sync.Once (atomic fast check, mutex, re-check), so the constructor runs once.
//   - OnFirstUse: returns an accessor func backed by sync.OnceValue. No lock is
//     written here; the runtime's once-initialization does the work.
//   - Fallible: like Lazy, but the constructor may fail. A failed attempt leaves
//     the holder uninitialized and the next Get retries.
//
// Prefer building a holder once in your composition root (main/bootstrap) and
// passing it to consumers. The package-level EagerInstance, LazyInstance and
// StaticInstance accessors exist for code that truly needs global reachability.
//
// Copying
//
// Holders must not be copied after first use. Each one embeds a noCopy marker,
// so `go vet` (copylocks) reports copies statically. Instances are only handed
// out by pointer; Instance has no exported constructor.
//
// Import
//
//	"github.com/sghaida/patterns/singleton"
package singleton
