// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/table"
)

// DefaultFormat is used when neither a format nor a recognized output
// extension is given.
const DefaultFormat = "csv"

// Exporter writes a table in one file format.
type Exporter interface {
	Name() string
	Extensions() []string
	Export(ctx context.Context, w io.Writer, t *table.Table) error
}

var (
	registry    = make(map[string]Exporter)
	extRegistry = make(map[string]Exporter)
)

// Register adds an exporter to the registry.
func Register(e Exporter) {
	name := strings.ToLower(e.Name())
	registry[name] = e
	for _, ext := range e.Extensions() {
		extRegistry[strings.ToLower(ext)] = e
	}
}

// Get returns the exporter registered under name.
func Get(name string) (Exporter, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unsupported export format: "+name,
			map[string]any{"format": name, "supported": SupportedFormats()})
	}
	return e, nil
}

// GetByPath returns the exporter for the extension of path.
func GetByPath(path string) (Exporter, bool) {
	e, ok := extRegistry[strings.ToLower(filepath.Ext(path))]
	return e, ok
}

// Resolve picks the exporter for an explicit format name, falling back to
// the output path extension and then DefaultFormat.
func Resolve(format, path string) (Exporter, error) {
	if format != "" {
		return Get(format)
	}
	if e, ok := GetByPath(path); ok {
		return e, nil
	}
	return Get(DefaultFormat)
}

// SupportedFormats returns the registered format names in sorted order.
func SupportedFormats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFile exports t to path, or to stdout when path is empty or "-".
func WriteFile(ctx context.Context, e Exporter, path string, t *table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		if err := e.Export(ctx, os.Stdout, t); err != nil {
			return err
		}
	} else if err := exportToFile(ctx, e, trimmed, t); err != nil {
		return err
	}

	tablesExported.WithLabelValues(e.Name()).Inc()
	slog.Debug("exported table",
		"format", e.Name(),
		"path", trimmed,
		"rows", t.NumRows(),
		"columns", len(t.Fieldnames))
	return nil
}

// exportToFile writes into a temporary file next to path and renames it into
// place only after the export succeeded, so a failed export leaves no file.
func exportToFile(ctx context.Context, e Exporter, path string, t *table.Table) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to create output file", err,
			map[string]any{"path": path})
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Warn("failed to remove temporary output", "error", rmErr, "path", tmp)
		}
	}()

	if err := e.Export(ctx, f, t); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to set output file mode", err,
			map[string]any{"path": path})
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to close output file", err,
			map[string]any{"path": path})
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to move output into place", err,
			map[string]any{"path": path})
	}
	committed = true
	return nil
}
