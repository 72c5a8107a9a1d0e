/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/merge"
	"github.com/NVIDIA/benchmark-results/pkg/serializer"
)

func combineCmd() *cli.Command {
	return &cli.Command{
		Name:                      "combine",
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Usage:                     "Merge result documents from repeated runs into one",
		ArgsUsage:                 "[FILE...]",
		Description: `Merges result documents, grouping same-named metrics and concatenating
their values in input order.

The document shape is detected from each input:
  - flat documents merge by (metric, measurement); every merged value is a list
  - tree documents merge key by key; leaves are concatenated

All inputs must have the same shape. With no FILE, standard input is read.

# Examples

  benchres combine run-1.json run-2.json run-3.json -o combined.json
  benchres combine arango-*.yaml --format yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			documentFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := inputPaths(cmd)
			docs, err := serializer.LoadDocuments(ctx, paths)
			if err != nil {
				return err
			}

			var out any
			switch docs[0].Shape {
			case serializer.ShapeFlat:
				flat, err := serializer.FlatDocuments(docs)
				if err != nil {
					return err
				}
				out = merge.Records(flat...)
			case serializer.ShapeTree:
				roots, err := serializer.TreeDocuments(docs)
				if err != nil {
					return err
				}
				merged, err := merge.Trees(roots...)
				if err != nil {
					return err
				}
				out = merged
			default:
				return errors.Newf(errors.ErrCodeInternal, "unknown document shape %q", docs[0].Shape)
			}

			slog.Info("combined documents",
				"count", len(docs),
				"shape", docs[0].Shape)

			return writeDocument(ctx, cmd, out)
		},
	}
}
