package singleton

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Variant names the construction strategy that produced an Instance.
type Variant int

const (
	VariantEager Variant = iota
	VariantLazy
	VariantStatic
	VariantFallible
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantEager:
		return "eager"
	case VariantLazy:
		return "lazy"
	case VariantStatic:
		return "static"
	case VariantFallible:
		return "fallible"
	default:
		return "unknown"
	}
}

// Title is the display name used by the demo output, e.g. "EagerSingleton".
func (v Variant) Title() string {
	switch v {
	case VariantEager:
		return "EagerSingleton"
	case VariantLazy:
		return "LazySingleton"
	case VariantStatic:
		return "StaticSingleton"
	case VariantFallible:
		return "FallibleSingleton"
	default:
		return "Singleton"
	}
}

// Instance is the process-wide object handed out by the package-level accessors.
// Its only payload is an identity.
//
// Instance values are created by this package only and always handed out by pointer.
type Instance struct {
	noCopy noCopy

	id        uuid.UUID
	variant   Variant
	createdAt time.Time
}

func newInstance(v Variant) *Instance {
	return &Instance{id: uuid.New(), variant: v, createdAt: time.Now()}
}

// ID returns the identity assigned at construction.
func (i *Instance) ID() uuid.UUID { return i.id }

// Variant returns the strategy that built the instance.
func (i *Instance) Variant() Variant { return i.variant }

// CreatedAt returns the construction time.
func (i *Instance) CreatedAt() time.Time { return i.createdAt }

// ShowMessage writes a greeting that names the variant.
func (i *Instance) ShowMessage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Hello from %s!\n", i.variant.Title())
}

// noCopy may be embedded into structs which must not be copied after first use.
// `go vet` (copylocks) reports any copy of a struct that contains it.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock() {}

// Unlock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Unlock() {}
