/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchmark-results/pkg/config"
	"github.com/NVIDIA/benchmark-results/pkg/reduce"
)

func reduceCmd() *cli.Command {
	return &cli.Command{
		Name:                  "reduce",
		EnableShellCompletion: true,
		Usage:                 "Reduce multi-valued metrics to a single value",
		ArgsUsage:             "[FILE]",
		Description: `Replaces every list value of a flat document with one number.

Measurements whose name contains "time" or "latency" (any case) use --op-time,
all others use --op. Values that are already single numbers are kept as is,
so reducing twice gives the same result.

# Examples

  benchres reduce combined.json --op max
  benchres reduce combined.json --op median --op-time min -o reduced.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "op",
				Usage: fmt.Sprintf("Reduction for non-time measurements (supported values: %v)", reduce.SupportedOperators()),
			},
			&cli.StringFlag{
				Name: "op-time",
				Usage: fmt.Sprintf("Reduction for time and latency measurements (supported values: %v, default: %s)",
					reduce.SupportedOperators(), reduce.DefaultTimeOperator),
			},
			outputFlag(),
			documentFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var opts []config.Option
			if cmd.IsSet("op") {
				opts = append(opts, config.WithOp(cmd.String("op")))
			}
			if cmd.IsSet("op-time") {
				opts = append(opts, config.WithOpTime(cmd.String("op-time")))
			}
			cfg, err := loadConfig(ctx, cmd, opts...)
			if err != nil {
				return err
			}
			sel, err := cfg.Selector()
			if err != nil {
				return err
			}

			doc, err := loadFlat(ctx, inputPaths(cmd))
			if err != nil {
				return err
			}

			reduced, err := reduce.Document(doc, sel)
			if err != nil {
				return err
			}

			slog.Info("reduced document",
				"records", len(reduced),
				"op", cfg.Op(),
				"opTime", cfg.OpTime())

			return writeDocument(ctx, cmd, reduced)
		},
	}
}
