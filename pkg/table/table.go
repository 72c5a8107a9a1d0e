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

package table

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

const (
	// DefaultSeparator joins path segments into a column name.
	DefaultSeparator = "/"

	// CountFieldname is the leading repetition index column.
	CountFieldname = "count"
)

// Column is a named sequence of observations.
type Column struct {
	Name   string
	Values []float64
}

// Table is a rectangular view of a document ready for export.
type Table struct {
	// Fieldnames is the header: count, extras in order, then metric columns.
	Fieldnames []string
	// Rows holds exactly one entry per repetition, each as wide as Fieldnames.
	Rows [][]Cell
	// Omitted lists the field names of metrics left out of the table.
	Omitted []string
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// Column returns the cells of the named column.
func (t *Table) Column(name string) ([]Cell, error) {
	for j, f := range t.Fieldnames {
		if f != name {
			continue
		}
		cells := make([]Cell, len(t.Rows))
		for i, row := range t.Rows {
			cells[i] = row[j]
		}
		return cells, nil
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("column %q not found", name), map[string]any{"column": name})
}

// Strings renders every row as text, header first.
func (t *Table) Strings() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Fieldnames...))
	for _, row := range t.Rows {
		line := make([]string, len(row))
		for j, c := range row {
			line[j] = c.String()
		}
		out = append(out, line)
	}
	return out
}

// Flatten returns one column per leaf of root, depth-first in key order,
// named by joining the key path with sep.
func Flatten(root *tree.Node, sep string) ([]Column, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeMalformedInput, "tree document is empty")
	}
	if root.IsLeaf() {
		return nil, errors.New(errors.ErrCodeMalformedInput, "tree document root must be a mapping")
	}
	var cols []Column
	err := root.Walk(func(path []string, leaf *tree.Node) error {
		cols = append(cols, Column{Name: strings.Join(path, sep), Values: leaf.Values()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cols, nil
}

// Selection splits a flat document by whether each record fits the table.
type Selection struct {
	Candidates metric.Document
	Rejected   metric.Document
}

// Select keeps the records holding exactly rows values and rejects the
// others with a warning. A scalar counts as one value.
func Select(doc metric.Document, rows int, sep string) Selection {
	var s Selection
	for _, r := range doc {
		if r.Value.Len() == rows {
			s.Candidates = append(s.Candidates, r)
			continue
		}
		slog.Warn("leaving out metric",
			"field", r.FieldName(sep),
			"metric", r.String(),
			"values", r.Value.Len(),
			"rows", rows)
		metricsOmitted.Inc()
		s.Rejected = append(s.Rejected, r)
	}
	return s
}

// Build assembles a table of exactly rows rows. A column shorter than rows
// yields empty cells past its end; values past rows are ignored.
func Build(cols []Column, rows int, extras []ExtraColumn) (*Table, error) {
	if rows < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidRequest, "row count cannot be negative, got %d", rows)
	}
	if err := validateExtras(extras, rows); err != nil {
		return nil, err
	}

	fieldnames := make([]string, 0, 1+len(extras)+len(cols))
	fieldnames = append(fieldnames, CountFieldname)
	for _, e := range extras {
		fieldnames = append(fieldnames, e.Fieldname)
	}
	for _, c := range cols {
		fieldnames = append(fieldnames, c.Name)
	}

	t := &Table{Fieldnames: fieldnames, Rows: make([][]Cell, rows)}
	for i := range rows {
		row := make([]Cell, 0, len(fieldnames))
		row = append(row, Index(i))
		for _, e := range extras {
			row = append(row, Text(e.Values[i]))
		}
		for _, c := range cols {
			if i < len(c.Values) {
				row = append(row, Number(c.Values[i]))
			} else {
				row = append(row, Empty())
			}
		}
		t.Rows[i] = row
	}

	rowsBuilt.Add(float64(rows))
	return t, nil
}

// FromRecords builds a table from a flat document, keeping only the metrics
// observed exactly rows times.
func FromRecords(doc metric.Document, rows int, sep string, extras *ExtraColumns) (*Table, error) {
	if err := extras.Validate(rows); err != nil {
		return nil, err
	}
	sel := Select(doc, rows, sep)
	cols := make([]Column, len(sel.Candidates))
	for i, r := range sel.Candidates {
		cols[i] = Column{Name: r.FieldName(sep), Values: r.Value.Values()}
	}
	t, err := Build(cols, rows, extras.Columns())
	if err != nil {
		return nil, err
	}
	for _, r := range sel.Rejected {
		t.Omitted = append(t.Omitted, r.FieldName(sep))
	}
	return t, nil
}

// FromTree builds a table from a tree document with one column per leaf.
func FromTree(root *tree.Node, rows int, sep string, extras *ExtraColumns) (*Table, error) {
	if err := extras.Validate(rows); err != nil {
		return nil, err
	}
	cols, err := Flatten(root, sep)
	if err != nil {
		return nil, err
	}
	return Build(cols, rows, extras.Columns())
}
