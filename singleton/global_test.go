package singleton_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/patterns/singleton"
)

func TestProcessAccessors_SameInstance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		get     func() *singleton.Instance
		variant singleton.Variant
	}{
		{name: "eager", get: singleton.EagerInstance, variant: singleton.VariantEager},
		{name: "lazy", get: singleton.LazyInstance, variant: singleton.VariantLazy},
		{name: "static", get: singleton.StaticInstance, variant: singleton.VariantStatic},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			first := tc.get()
			require.NotNil(t, first)
			assert.Same(t, first, tc.get())
			assert.Equal(t, tc.variant, first.Variant())
			assert.NotEqual(t, uuid.Nil, first.ID())
			assert.False(t, first.CreatedAt().IsZero())

			for _, got := range hammer(32, tc.get) {
				assert.Same(t, first, got)
			}
		})
	}
}

func TestProcessAccessors_DistinctPerVariant(t *testing.T) {
	t.Parallel()

	assert.NotSame(t, singleton.EagerInstance(), singleton.LazyInstance())
	assert.NotSame(t, singleton.LazyInstance(), singleton.StaticInstance())
	assert.NotEqual(t, singleton.EagerInstance().ID(), singleton.StaticInstance().ID())
}

func TestInstance_ShowMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	singleton.EagerInstance().ShowMessage(&buf)
	assert.Equal(t, "Hello from EagerSingleton!\n", buf.String())
}

func TestVariant_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "eager", singleton.VariantEager.String())
	assert.Equal(t, "lazy", singleton.VariantLazy.String())
	assert.Equal(t, "static", singleton.VariantStatic.String())
	assert.Equal(t, "fallible", singleton.VariantFallible.String())
	assert.Equal(t, "unknown", singleton.Variant(99).String())
	assert.Equal(t, "Singleton", singleton.Variant(99).Title())
}

func TestInstanceHolders(t *testing.T) {
	t.Parallel()

	var created []string
	hook := singleton.WithHook(func(name string) { created = append(created, name) })

	eager := singleton.NewEagerHolder(singleton.WithName("e"), hook)
	lazy := singleton.NewLazyHolder(singleton.WithName("l"), hook)
	static := singleton.NewStaticHolder(singleton.WithName("s"), hook)

	assert.Equal(t, []string{"e"}, created)

	assert.Same(t, lazy.Get(), lazy.Get())
	assert.Same(t, static(), static())
	assert.Same(t, eager.Get(), eager.Get())

	assert.Equal(t, []string{"e", "l", "s"}, created)
	assert.Equal(t, singleton.VariantLazy, lazy.Get().Variant())
	assert.Equal(t, singleton.VariantStatic, static().Variant())
	assert.NotSame(t, lazy.Get(), singleton.LazyInstance(), "each holder owns its own instance")
}

func TestNewFallibleHolder(t *testing.T) {
	t.Parallel()

	down := errors.New("backend down")
	fail := true
	h := singleton.NewFallibleHolder(func() error {
		if fail {
			return down
		}
		return nil
	})

	_, err := h.Get()
	require.ErrorIs(t, err, down)

	fail = false
	inst, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, singleton.VariantFallible, inst.Variant())
	assert.Equal(t, 2, h.Attempts())

	nilCheck := singleton.NewFallibleHolder(nil)
	_, err = nilCheck.Get()
	assert.NoError(t, err)
}
