package singleton

import (
	"github.com/rs/zerolog"
)

// Metrics is an optional collaborator that counts constructions per holder name.
//
// internal/metrics provides a Prometheus-backed implementation.
type Metrics interface {
	Inc(name string)
}

// Option configures a holder at creation time.
type Option func(*options)

type options struct {
	name    string
	log     zerolog.Logger
	metrics Metrics
	hook    func(name string)
}

// WithName sets the holder name used in logs, metrics and errors.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger used to report construction.
// The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics sets a construction counter. A nil value disables counting.
func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithHook registers fn to be called once, right after the instance is built.
// It runs inside the guarded region, so it must not call back into the holder.
func WithHook(fn func(name string)) Option {
	return func(o *options) { o.hook = fn }
}

func newOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// constructed reports a completed construction to every configured sink.
func (o options) constructed(v Variant) {
	o.log.Debug().
		Str("holder", o.name).
		Stringer("variant", v).
		Msg("instance constructed")
	if o.metrics != nil {
		o.metrics.Inc(o.name)
	}
	if o.hook != nil {
		o.hook(o.name)
	}
}
