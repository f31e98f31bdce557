// Package di resolves optional collaborators for a composition root.
//
// The pattern packages take their collaborators (loggers, metrics) as explicit
// options. A composition root that wants to keep those optional provides them
// through a Registry and resolves them while wiring:
//
//	reg := di.NewMapRegistry().
//		Provide("patterns.metrics", counters)
//
//	m := di.ResolveOr[singleton.Metrics](reg, cfg, "patterns.metrics", nil)
//
// There is no container and no graph resolution. The registry is read-only
// during wiring and never consulted afterwards.
//
// Import
//
//	"github.com/sghaida/patterns/di"
package di
