// Package proxy defers construction of an expensive delegate until its
// behavior is first requested.
//
// Deferred is the single-threaded counterpart of singleton.Lazy: it builds on
// first use and forwards afterwards, with no synchronization. Share it between
// goroutines only behind your own lock, or use singleton.Lazy instead.
package proxy

import (
	"fmt"
	"io"
)

// Deferred holds a delegate that is built on the first Get.
// It is not safe for concurrent use.
type Deferred[T any] struct {
	build func() T
	val   T
	built bool
}

// NewDeferred returns a holder that will call build on first use.
func NewDeferred[T any](build func() T) *Deferred[T] {
	return &Deferred[T]{build: build}
}

// Get returns the delegate, building it on the first call.
func (d *Deferred[T]) Get() T {
	if !d.built {
		d.val = d.build()
		d.build = nil
		d.built = true
	}
	return d.val
}

// Built reports whether the delegate exists yet.
func (d *Deferred[T]) Built() bool { return d.built }

// Image is anything that can be displayed.
type Image interface {
	Display()
}

// RealImage is loaded from disk as part of its construction.
type RealImage struct {
	filename string
	out      io.Writer
}

// LoadImage builds a RealImage and performs the (simulated) disk load.
func LoadImage(filename string, out io.Writer) *RealImage {
	img := &RealImage{filename: filename, out: out}
	_, _ = fmt.Fprintf(out, "Loading image from disk: %s\n", filename)
	return img
}

// Display implements Image.
func (r *RealImage) Display() {
	_, _ = fmt.Fprintf(r.out, "Displaying image: %s\n", r.filename)
}

// ProxyImage stands in for a RealImage and loads it on the first Display.
type ProxyImage struct {
	filename string
	real     *Deferred[*RealImage]
}

// NewProxyImage returns a proxy. Nothing is loaded until Display is called.
func NewProxyImage(filename string, out io.Writer) *ProxyImage {
	return &ProxyImage{
		filename: filename,
		real:     NewDeferred(func() *RealImage { return LoadImage(filename, out) }),
	}
}

// Display implements Image.
func (p *ProxyImage) Display() { p.real.Get().Display() }

// Loaded reports whether the underlying image has been loaded.
func (p *ProxyImage) Loaded() bool { return p.real.Built() }

// Filename returns the image path.
func (p *ProxyImage) Filename() string { return p.filename }

var (
	_ Image = (*RealImage)(nil)
	_ Image = (*ProxyImage)(nil)
)
