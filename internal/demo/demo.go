// Package demo holds one runnable scenario per pattern. Each scenario wires the
// pattern's types together and writes what happens to Env.Out.
//
// The printed text is illustrative, not a compatibility contract.
package demo

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sghaida/patterns/di"
	"github.com/sghaida/patterns/singleton"
)

// Registry keys resolved by scenarios.
const (
	KeyMetrics = "patterns.metrics"
)

// ErrUnknownScenario is returned for a name that is not registered.
var ErrUnknownScenario = errors.New("demo: unknown scenario")

// Env is everything a scenario may use. It is built once by the caller.
type Env struct {
	Out io.Writer
	Log zerolog.Logger

	// Registry supplies optional collaborators (see KeyMetrics). May be nil.
	Registry di.Registry

	// Goroutines is how many callers race for a lazy instance.
	Goroutines int
}

// Scenario is a named, runnable demonstration.
type Scenario struct {
	Name    string
	Summary string
	Run     func(env Env) error
}

var scenarios = map[string]Scenario{}

func register(s Scenario) {
	if _, dup := scenarios[s.Name]; dup {
		panic("demo: duplicate scenario " + strconv.Quote(s.Name))
	}
	scenarios[s.Name] = s
}

// All returns every scenario ordered by name.
func All() []Scenario {
	out := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every scenario name in order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s", ErrUnknownScenario, strconv.Quote(name))
	}
	return s, nil
}

// Select resolves names to scenarios in the given order, or returns all of
// them when names is empty. Every name is checked before any is returned.
func Select(names ...string) ([]Scenario, error) {
	if len(names) == 0 {
		return All(), nil
	}
	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// Execute runs one scenario against env and wraps its failure with the
// scenario name.
func Execute(env Env, s Scenario) error {
	env.Log.Debug().Str("scenario", s.Name).Msg("running scenario")
	if err := s.Run(env); err != nil {
		env.Log.Error().Err(err).Str("scenario", s.Name).Msg("scenario failed")
		return fmt.Errorf("demo: %s: %w", s.Name, err)
	}
	return nil
}

// Run executes the named scenarios in the given order, or all of them when
// names is empty. Nothing runs unless every name is known. Each scenario
// gets a "== name ==" header; scenarios are separated by a blank line.
func Run(env Env, names ...string) error {
	selected, err := Select(names...)
	if err != nil {
		return err
	}
	for i, s := range selected {
		if i > 0 {
			_, _ = fmt.Fprintln(env.Out)
		}
		_, _ = fmt.Fprintf(env.Out, "== %s ==\n", s.Name)
		if err := Execute(env, s); err != nil {
			return err
		}
	}
	return nil
}

// holderOptions wires a demo holder to the env: logger, optional metrics from
// the registry, and a hook announcing construction on Out.
func (env Env) holderOptions(name string, v singleton.Variant) []singleton.Option {
	m := di.ResolveOr[singleton.Metrics](env.Registry, nil, KeyMetrics, nil)
	return []singleton.Option{
		singleton.WithName(name),
		singleton.WithLogger(env.Log),
		singleton.WithMetrics(m),
		singleton.WithHook(func(string) {
			_, _ = fmt.Fprintf(env.Out, "%s is created!\n", v.Title())
		}),
	}
}
