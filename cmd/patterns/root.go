package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/di"
	"github.com/sghaida/patterns/internal/config"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/sghaida/patterns/internal/logging"
	"github.com/sghaida/patterns/internal/metrics"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// rootOptions holds global flags plus the app wired from them.
type rootOptions struct {
	ConfigPath string
	LogLevel   string
	Format     string

	app *app
}

// app is the composition root: everything is built once here and passed down.
type app struct {
	cfg      config.Config
	log      zerolog.Logger
	counts   *metrics.Constructions
	registry *di.MapRegistry
}

func newApp(cfg config.Config, stderr io.Writer) *app {
	a := &app{
		cfg:      cfg,
		log:      logging.New(stderr, cfg.Log.Level, cfg.Log.Format),
		registry: di.NewMapRegistry(),
	}
	if cfg.Metrics {
		a.counts = metrics.NewConstructions()
		a.registry.Provide(demo.KeyMetrics, a.counts)
	}
	return a
}

func (a *app) env(out io.Writer) demo.Env {
	return demo.Env{
		Out:        out,
		Log:        a.log,
		Registry:   a.registry,
		Goroutines: a.cfg.Demo.Goroutines,
	}
}

// newRootCommand creates the root command. stdout receives scenario output;
// stderr receives logs.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "patterns",
		Short:         "Run design pattern demonstrations",
		Long:          "Runnable demonstrations of single-instance access and companion design patterns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				cfg.Log.Level = opts.LogLevel
				if err := config.Validate(cfg); err != nil {
					return err
				}
			}
			opts.app = newApp(cfg, stderr)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level override (trace|debug|info|warn|error|disabled)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newRunCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
