package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/internal/demo"
)

type scenarioInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			all := demo.All()

			if opts.Format == "json" {
				infos := make([]scenarioInfo, len(all))
				for i, s := range all {
					infos[i] = scenarioInfo{Name: s.Name, Summary: s.Summary}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			for _, s := range all {
				if _, err := fmt.Fprintf(out, "%-20s %s\n", s.Name, s.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
