/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchmark-results/pkg/config"
	"github.com/NVIDIA/benchmark-results/pkg/table"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                      "convert",
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Usage:                     "Convert a nested result document into a table",
		ArgsUsage:                 "[FILE...]",
		Description: `Writes one row per repetition and one column per leaf. Column names join
the key path with the separator, in document order.

The number of rows is the length of the count leaf (totalNumberOfOperations by
default; nested keys are joined with the separator) unless --rows is given.
Leaves shorter than the row count leave their remaining cells empty. Several
inputs are combined first.

# Examples

  benchres convert arangobench.json -o results.csv
  benchres convert run-*.json --extra collection=docs,docs,edges --format html -o results.html`,
		Flags: []cli.Flag{
			separatorFlag(),
			extraFlag(),
			&cli.StringFlag{
				Name:  "count-key",
				Usage: "Leaf whose length sets the row count (default: " + tree.KeyTotalOperations + ")",
			},
			rowsFlag(),
			outputFlag(),
			tableFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := tableOptions(cmd)
			if cmd.IsSet("count-key") {
				opts = append(opts, config.WithCountKey(cmd.String("count-key")))
			}
			cfg, err := loadConfig(ctx, cmd, opts...)
			if err != nil {
				return err
			}
			extras, err := parseExtras(cmd)
			if err != nil {
				return err
			}

			root, err := loadTree(ctx, inputPaths(cmd))
			if err != nil {
				return err
			}

			rows, ok, err := parseRows(cmd)
			if err != nil {
				return err
			}
			if !ok {
				rows, err = root.LeafLen(strings.Split(cfg.CountKey(), cfg.Separator())...)
				if err != nil {
					return err
				}
			}

			t, err := table.FromTree(root, rows, cfg.Separator(), extras)
			if err != nil {
				return err
			}

			slog.Info("converted table",
				"rows", t.NumRows(),
				"columns", len(t.Fieldnames))

			return writeTable(ctx, cfg, cmd.String("output"), t)
		},
	}
}
