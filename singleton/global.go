package singleton

// NewEagerHolder returns an Eager holder whose Instance is built immediately.
func NewEagerHolder(opts ...Option) *Eager[Instance] {
	return NewEager(func() *Instance { return newInstance(VariantEager) }, opts...)
}

// NewLazyHolder returns a Lazy holder whose Instance is built on first Get.
func NewLazyHolder(opts ...Option) *Lazy[Instance] {
	return NewLazy(func() *Instance { return newInstance(VariantLazy) }, opts...)
}

// NewStaticHolder returns an OnFirstUse accessor for an Instance.
func NewStaticHolder(opts ...Option) func() *Instance {
	return OnFirstUse(func() *Instance { return newInstance(VariantStatic) }, opts...)
}

// NewFallibleHolder returns a Fallible holder for an Instance. check runs
// before each construction attempt; a non-nil result fails that attempt.
func NewFallibleHolder(check func() error, opts ...Option) *Fallible[Instance] {
	return NewFallible(func() (*Instance, error) {
		if check != nil {
			if err := check(); err != nil {
				return nil, err
			}
		}
		return newInstance(VariantFallible), nil
	}, opts...)
}

// Process-wide holders for callers that need global reachability.
// The eager instance is built during package initialization, before main runs.
var (
	eagerHolder  = NewEagerHolder(WithName("process.eager"))
	lazyHolder   = NewLazyHolder(WithName("process.lazy"))
	staticHolder = NewStaticHolder(WithName("process.static"))
)

// EagerInstance returns the instance built at package initialization.
func EagerInstance() *Instance { return eagerHolder.Get() }

// LazyInstance returns the instance built on the first call.
func LazyInstance() *Instance { return lazyHolder.Get() }

// StaticInstance returns the instance built on the first call through the
// runtime's once-initialization.
func StaticInstance() *Instance { return staticHolder() }
