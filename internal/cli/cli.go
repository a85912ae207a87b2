// Package cli implements the svgpath command.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"honnef.co/go/svgpath/internal/config"
	"honnef.co/go/svgpath/internal/logging"
)

// ExitError is an error that carries the process exit code. Usage errors use
// code 2 and malformed input code 1.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Streams are the standard streams of the command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes the command line args.
func Run(ctx context.Context, args []string, streams Streams) error {
	cmd := NewCommand(streams)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

type app struct {
	streams Streams
	cfg     config.Config

	cfgPath   string
	logLevel  string
	logFormat string
	jobs      int
}

// NewCommand returns the root command.
func NewCommand(streams Streams) *cobra.Command {
	a := &app{streams: streams}
	root := &cobra.Command{
		Use:   "svgpath",
		Short: "Format, measure, transform and render SVG path data",
		Long: `svgpath reads SVG path data, such as the d attribute of a path element,
from files, standard input or the -e flag.

Settings can be loaded from a TOML or YAML file with --config. Flags
override the file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "load settings from `file` (.toml, .yaml or .yml)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log `level`: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log `format`: text or json")
	pf.IntVarP(&a.jobs, "jobs", "j", 4, "process up to `n` inputs concurrently")

	root.AddCommand(
		a.fmtCommand(),
		a.bboxCommand(),
		a.transformCommand(),
		a.renderCommand(),
		a.listCommand(),
	)
	return root
}

// setup loads the configuration, applies the global flags and installs the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		cfg, err = config.Load(a.cfgPath)
		if err != nil {
			return usageError(err)
		}
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if fs.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.streams.Err)
	if err != nil {
		return usageError(err)
	}
	a.cfg = cfg
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("configuration loaded", "file", a.cfgPath, "jobs", cfg.Jobs)
	return nil
}

// maxArgs is cobra.MaximumNArgs with a usage error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
