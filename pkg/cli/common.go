/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchmark-results/pkg/config"
	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/export"
	"github.com/NVIDIA/benchmark-results/pkg/merge"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/serializer"
	"github.com/NVIDIA/benchmark-results/pkg/table"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func documentFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func separatorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "sep",
		Usage: fmt.Sprintf("Fieldname domain separator (default: %s)", table.DefaultSeparator),
	}
}

func extraFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "extra",
		Usage: "Add an extra column with one value per row (format: FIELDNAME=VALUE[,VALUE...], can be repeated)",
	}
}

func rowsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "rows",
		Usage: "Number of rows to emit (default: length of the count metric)",
	}
}

func tableFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"F"},
		Usage: fmt.Sprintf("Table format (supported values: %v, default: from output extension, else %s)",
			export.SupportedFormats(), export.DefaultFormat),
	}
}

// inputPaths returns the positional arguments, or standard input when none
// are given.
func inputPaths(cmd *cli.Command) []string {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return []string{serializer.StdioPath}
	}
	return paths
}

// loadConfig layers the defaults file and the given flag options over the
// built-in defaults.
func loadConfig(ctx context.Context, cmd *cli.Command, flagOpts ...config.Option) (*config.Config, error) {
	f, err := config.Load(ctx, cmd.String("config"))
	if err != nil {
		return nil, err
	}
	opts := append(f.Options(), flagOpts...)
	cfg := config.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// tableOptions collects the table flags that were set explicitly.
func tableOptions(cmd *cli.Command) []config.Option {
	var opts []config.Option
	if cmd.IsSet("sep") {
		opts = append(opts, config.WithSeparator(cmd.String("sep")))
	}
	if cmd.IsSet("format") {
		opts = append(opts, config.WithFormat(cmd.String("format")))
	}
	return opts
}

// loadFlat loads every input and merges them into one flat document.
func loadFlat(ctx context.Context, paths []string) (metric.Document, error) {
	docs, err := serializer.LoadDocuments(ctx, paths)
	if err != nil {
		return nil, err
	}
	flat, err := serializer.FlatDocuments(docs)
	if err != nil {
		return nil, err
	}
	if len(flat) == 1 {
		return flat[0], nil
	}
	return merge.Records(flat...), nil
}

// loadTree loads every input and merges them into one tree.
func loadTree(ctx context.Context, paths []string) (*tree.Node, error) {
	docs, err := serializer.LoadDocuments(ctx, paths)
	if err != nil {
		return nil, err
	}
	roots, err := serializer.TreeDocuments(docs)
	if err != nil {
		return nil, err
	}
	if len(roots) == 1 {
		return roots[0], nil
	}
	return merge.Trees(roots...)
}

func parseExtras(cmd *cli.Command) (*table.ExtraColumns, error) {
	extras := table.NewExtraColumns()
	if err := extras.AddSpecs(cmd.StringSlice("extra")...); err != nil {
		return nil, fmt.Errorf("invalid --extra flag: %w", err)
	}
	return extras, nil
}

func parseRows(cmd *cli.Command) (int, bool, error) {
	if !cmd.IsSet("rows") {
		return 0, false, nil
	}
	n := cmd.Int("rows")
	if n < 0 {
		return 0, false, errors.Newf(errors.ErrCodeInvalidRequest, "--rows cannot be negative, got %d", n)
	}
	return n, true, nil
}

func writeDocument(ctx context.Context, cmd *cli.Command, v any) error {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return errors.Newf(errors.ErrCodeInvalidRequest, "unknown output format: %q", format)
	}

	ser, err := serializer.NewFileWriter(format, cmd.String("output"))
	if err != nil {
		return err
	}

	if err := ser.Serialize(ctx, v); err != nil {
		if cerr := ser.Close(); cerr != nil {
			slog.Warn("failed to close serializer", "error", cerr)
		}
		return err
	}
	if err := ser.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to close output", err)
	}
	return nil
}

func writeTable(ctx context.Context, cfg *config.Config, output string, t *table.Table) error {
	e, err := export.Resolve(cfg.Format(), output)
	if err != nil {
		return err
	}
	if len(t.Omitted) > 0 {
		slog.Info("left out metrics without one value per row",
			"count", len(t.Omitted),
			"fields", strings.Join(t.Omitted, ","))
	}
	return export.WriteFile(ctx, e, output, t)
}
