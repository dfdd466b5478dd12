// Package cli implements the pathfinder command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/report"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
	output     string
	timeout    time.Duration
	verbose    bool
}

// app carries resolved configuration between cobra hooks and commands.
type app struct {
	flags   globalFlags
	cfg     config.Config
	log     *log.Logger
	version string
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := NewRootCommand(ctx, version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the pathfinder command tree bound to ctx.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	if version == "" {
		version = "dev"
	}
	a := &app{version: version}

	rootCmd := &cobra.Command{
		Use:               "pathfinder",
		Short:             "Compute single-source shortest paths with Dijkstra or Bellman-Ford.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (default $HOME/.pathfinder.yaml)")
	pf.StringVar(&a.flags.envFile, "env-file", "", "dotenv file with PATHFINDER_* variables (default ./.env)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text or json")
	pf.StringVarP(&a.flags.output, "output", "o", "", "output format: text, table, json, yaml (default table on a terminal, text otherwise)")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "abort a run after this long (0 disables)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")

	rootCmd.AddCommand(
		newDijkstraCommand(ctx, a),
		newBellmanFordCommand(ctx, a),
		newCompareCommand(ctx, a),
		newGenerateCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// setup resolves configuration and builds the logger. Flags override
// environment, .env and the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Sources{File: a.flags.configFile, EnvFile: a.flags.envFile})
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.verbose {
		cfg.Log.Level = log.DebugLevel.String()
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}
	if flags.Changed("output") {
		cfg.Output = a.flags.output
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.flags.timeout
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "configure logging")
	}

	a.cfg = cfg
	a.log = logger
	a.log.WithFields(log.Fields{
		"output":  cfg.Output,
		"form":    cfg.Form,
		"timeout": cfg.Timeout,
	}).Debug("configuration resolved")

	return nil
}

// format returns the configured output format, or picks one for w.
func (a *app) format(w io.Writer) (report.Format, error) {
	if a.cfg.Output != "" {
		return report.ParseFormat(a.cfg.Output)
	}
	if logging.IsTerminal(w) {
		return report.FormatTable, nil
	}

	return report.FormatText, nil
}

// withTimeout applies the configured deadline to ctx.
func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pathfinder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "pathfinder %s\n", a.version)
			return err
		},
	}
}
