/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchmark-results/pkg/defaults"
	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/logging"
)

const (
	name           = "benchres"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                      name,
		Usage:                     "Combine, reduce and tabulate benchmark results",
		Version:                   fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Description: `benchres works on result documents written by load-testing tools.

Two document shapes are accepted:
  - flat: a list of {metric, measurement, value} records (YCSB)
  - tree: nested mappings whose leaves are lists of numbers (arangobench)

Typical pipeline:
  benchres combine run-*.json -o all.json
  benchres extract all.json --extra threads=8,8,8 -o all.csv`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file with default settings (separator, op, opTime, format, ...)",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write pipeline counters to this file in Prometheus text format on exit",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.SetDefault(slog.Default().With("run", uuid.NewString()))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			return writeMetrics(cmd.String("metrics-file"))
		},
		Commands: []*cli.Command{
			combineCmd(),
			reduceCmd(),
			extractCmd(),
			convertCmd(),
		},
	}
}

func writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write metrics file", err,
			map[string]any{"path": path})
	}
	slog.Debug("wrote metrics", "path", path)
	return nil
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	// Flag parsing failures happen before Before installs the configured
	// logger, so start from the LOG_LEVEL one.
	logging.SetDefaultStructuredLogger(name, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
	defer cancel()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err, "code", errors.CodeOf(err))
		fmt.Fprintln(os.Stderr, err)
		cancel()
		stop()
		os.Exit(1)
	}
}
