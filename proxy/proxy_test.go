package proxy_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/patterns/proxy"
)

func TestDeferred_BuildsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	d := proxy.NewDeferred(func() *int {
		calls++
		v := 42
		return &v
	})

	assert.False(t, d.Built())
	assert.Zero(t, calls)

	first := d.Get()
	require.NotNil(t, first)
	assert.True(t, d.Built())
	assert.Equal(t, 1, calls)

	assert.Same(t, first, d.Get())
	assert.Equal(t, 1, calls)
}

func TestDeferred_ZeroValueDelegate(t *testing.T) {
	t.Parallel()

	calls := 0
	d := proxy.NewDeferred(func() string {
		calls++
		return ""
	})

	assert.Equal(t, "", d.Get())
	assert.Equal(t, "", d.Get())
	assert.Equal(t, 1, calls, "an empty delegate still counts as built")
}

func TestProxyImage_LoadsOnFirstDisplay(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	img := proxy.NewProxyImage("example.jpg", &out)

	assert.Empty(t, out.String(), "no load before first use")
	assert.False(t, img.Loaded())
	assert.Equal(t, "example.jpg", img.Filename())

	img.Display()
	assert.True(t, img.Loaded())
	assert.Equal(t, 1, strings.Count(out.String(), "Loading image from disk"))

	img.Display()
	assert.Equal(t, 1, strings.Count(out.String(), "Loading image from disk"))
	assert.Equal(t, 2, strings.Count(out.String(), "Displaying image: example.jpg"))

	assert.Equal(t,
		"Loading image from disk: example.jpg\n"+
			"Displaying image: example.jpg\n"+
			"Displaying image: example.jpg\n",
		out.String())
}

func TestRealImage_LoadsEagerly(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	img := proxy.LoadImage("a.png", &out)
	assert.Equal(t, "Loading image from disk: a.png\n", out.String())

	img.Display()
	assert.Contains(t, out.String(), "Displaying image: a.png")
}
