// Command patterns runs the design pattern demonstrations.
//
// Usage:
//
//	patterns list
//	patterns run [scenario...]
//	patterns --config patterns.yaml --log-level debug run lazy-singleton
//
// Logs go to stderr; scenario output goes to stdout.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}
