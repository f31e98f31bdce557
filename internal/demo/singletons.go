package demo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sghaida/patterns/singleton"
)

func init() {
	register(Scenario{
		Name:    "eager-singleton",
		Summary: "instance built before first access; Get is a plain read",
		Run:     runEagerSingleton,
	})
	register(Scenario{
		Name:    "lazy-singleton",
		Summary: "instance built once on first access, even under concurrent callers",
		Run:     runLazySingleton,
	})
	register(Scenario{
		Name:    "static-singleton",
		Summary: "instance built on first call by the runtime's once-initialization",
		Run:     runStaticSingleton,
	})
	register(Scenario{
		Name:    "fallible-singleton",
		Summary: "failed construction leaves the holder retryable",
		Run:     runFallibleSingleton,
	})
}

// showTwice greets through two handles and confirms they are the same instance.
func showTwice(env Env, s1, s2 *singleton.Instance) error {
	s1.ShowMessage(env.Out)
	s2.ShowMessage(env.Out)
	if s1 != s2 {
		return errors.New("holder returned two different instances")
	}
	_, _ = fmt.Fprintln(env.Out, "Both pointers point to the same instance!")
	return nil
}

func runEagerSingleton(env Env) error {
	h := singleton.NewEagerHolder(env.holderOptions("demo.eager", singleton.VariantEager)...)
	return showTwice(env, h.Get(), h.Get())
}

func runLazySingleton(env Env) error {
	h := singleton.NewLazyHolder(env.holderOptions("demo.lazy", singleton.VariantLazy)...)
	_, _ = fmt.Fprintf(env.Out, "Holder ready, initialized=%t\n", h.Initialized())

	if err := showTwice(env, h.Get(), h.Get()); err != nil {
		return err
	}

	n := env.Goroutines
	if n < 2 {
		n = 2
	}
	_, _ = fmt.Fprintf(env.Out, "Racing %d first-time callers on a fresh holder...\n", n)

	var builds int
	opts := append(env.holderOptions("demo.lazy.race", singleton.VariantLazy),
		singleton.WithHook(func(string) {
			builds++
			_, _ = fmt.Fprintf(env.Out, "%s is created!\n", singleton.VariantLazy.Title())
		}))
	raced := singleton.NewLazyHolder(opts...)

	got := make([]*singleton.Instance, n)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			got[i] = raced.Get()
		}(i)
	}
	start.Done()
	done.Wait()

	distinct := map[*singleton.Instance]struct{}{}
	for _, inst := range got {
		distinct[inst] = struct{}{}
	}
	_, _ = fmt.Fprintf(env.Out, "Constructions: %d, distinct instances: %d\n", builds, len(distinct))
	if builds != 1 || len(distinct) != 1 {
		return fmt.Errorf("lazy holder built %d times, handed out %d instances", builds, len(distinct))
	}
	return nil
}

func runStaticSingleton(env Env) error {
	get := singleton.NewStaticHolder(env.holderOptions("demo.static", singleton.VariantStatic)...)
	_, _ = fmt.Fprintln(env.Out, "Accessor ready, nothing built yet.")
	return showTwice(env, get(), get())
}

var errBackendNotReady = errors.New("backend not ready")

func runFallibleSingleton(env Env) error {
	ready := false
	h := singleton.NewFallibleHolder(func() error {
		if !ready {
			return errBackendNotReady
		}
		return nil
	}, env.holderOptions("demo.fallible", singleton.VariantFallible)...)

	if _, err := h.Get(); err != nil {
		_, _ = fmt.Fprintf(env.Out, "First attempt failed: %v\n", err)
		_, _ = fmt.Fprintf(env.Out, "Initialized after failure: %t\n", h.Initialized())
	}

	ready = true
	s1, err := h.Get()
	if err != nil {
		return err
	}
	s2, err := h.Get()
	if err != nil {
		return err
	}
	if err := showTwice(env, s1, s2); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(env.Out, "Attempts: %d\n", h.Attempts())
	return nil
}
