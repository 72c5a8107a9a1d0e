/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchmark-results/pkg/config"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/table"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:                      "extract",
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Usage:                     "Convert a flat result document into a table",
		ArgsUsage:                 "[FILE...]",
		Description: `Writes one row per repetition and one column per metric.

The number of rows is the length of the count metric (OVERALL/RunTime(ms) by
default) unless --rows is given. Metrics that do not have exactly one value
per row are left out with a warning. Several inputs are combined first.

# Examples

  benchres extract combined.json -o results.csv
  benchres extract combined.json --extra threads=8,16,32 --extra db=redis,redis,redis
  benchres extract combined.json --sep . --format parquet -o results.parquet`,
		Flags: []cli.Flag{
			separatorFlag(),
			extraFlag(),
			&cli.StringFlag{
				Name:  "count-metric",
				Usage: "Metric whose length sets the row count (default: " + metric.MetricOverall + ")",
			},
			&cli.StringFlag{
				Name:  "count-measurement",
				Usage: "Measurement whose length sets the row count (default: " + metric.MeasurementRunTime + ")",
			},
			rowsFlag(),
			outputFlag(),
			tableFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := tableOptions(cmd)
			if cmd.IsSet("count-metric") || cmd.IsSet("count-measurement") {
				m, ms := metric.MetricOverall, metric.MeasurementRunTime
				if cmd.IsSet("count-metric") {
					m = cmd.String("count-metric")
				}
				if cmd.IsSet("count-measurement") {
					ms = cmd.String("count-measurement")
				}
				opts = append(opts, config.WithCountMetric(m, ms))
			}
			cfg, err := loadConfig(ctx, cmd, opts...)
			if err != nil {
				return err
			}
			extras, err := parseExtras(cmd)
			if err != nil {
				return err
			}

			doc, err := loadFlat(ctx, inputPaths(cmd))
			if err != nil {
				return err
			}

			rows, ok, err := parseRows(cmd)
			if err != nil {
				return err
			}
			if !ok {
				rows, err = doc.RowCount(cfg.CountMetric(), cfg.CountMeasurement())
				if err != nil {
					return err
				}
			}

			t, err := table.FromRecords(doc, rows, cfg.Separator(), extras)
			if err != nil {
				return err
			}

			slog.Info("extracted table",
				"rows", t.NumRows(),
				"columns", len(t.Fieldnames))

			return writeTable(ctx, cfg, cmd.String("output"), t)
		},
	}
}
