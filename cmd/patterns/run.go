package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/sghaida/patterns/internal/metrics"
)

type scenarioResult struct {
	Name   string `json:"name"`
	Output string `json:"output"`
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	var emitMetrics bool

	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run scenarios (all when none are named)",
		Example: "  patterns run lazy-singleton\n" +
			"  patterns run --format json observer proxy",
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			out := cmd.OutOrStdout()

			var err error
			if opts.Format == "json" {
				err = runJSON(a, cmd, args)
			} else {
				err = demo.Run(a.env(out), args...)
			}
			if err != nil {
				return err
			}

			if a.counts != nil {
				snap, serr := a.counts.Snapshot()
				if serr != nil {
					return serr
				}
				a.log.Info().Str("constructions", metrics.FormatSnapshot(snap)).Msg("run complete")
				if emitMetrics {
					return a.counts.WriteText(cmd.ErrOrStderr())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&emitMetrics, "emit-metrics", false, "write construction counters to stderr in Prometheus text format")
	return cmd
}

// runJSON runs each scenario into its own buffer and emits one JSON array.
func runJSON(a *app, cmd *cobra.Command, names []string) error {
	scenarios, err := demo.Select(names...)
	if err != nil {
		return err
	}

	results := make([]scenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		var buf bytes.Buffer
		if err := demo.Execute(a.env(&buf), s); err != nil {
			return err
		}
		results = append(results, scenarioResult{Name: s.Name, Output: buf.String()})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
