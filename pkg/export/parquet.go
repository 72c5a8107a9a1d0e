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
	"fmt"
	"io"
	"sort"

	"github.com/parquet-go/parquet-go"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/table"
)

// ParquetBatchSize is the number of rows handed to the writer at once.
const ParquetBatchSize = 1000

func init() {
	Register(&ParquetExporter{})
}

// ParquetExporter writes tables with the parquet Row API. The count column
// is INT64, extra columns are strings and metric columns are doubles; all
// are optional so empty cells become nulls.
type ParquetExporter struct{}

func (e *ParquetExporter) Name() string         { return "parquet" }
func (e *ParquetExporter) Extensions() []string { return []string{".parquet"} }

func (e *ParquetExporter) Export(ctx context.Context, w io.Writer, t *table.Table) error {
	schema, order, err := parquetSchema(t)
	if err != nil {
		return err
	}

	pw := parquet.NewWriter(w, schema, parquet.Compression(&parquet.Snappy))

	batch := make([]parquet.Row, 0, ParquetBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := pw.WriteRows(batch); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for _, cells := range t.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch = append(batch, parquetRow(cells, order))
		if len(batch) >= ParquetBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// parquetSchema builds the schema and returns, for each schema column in
// leaf order, the index of the table field it holds. Group columns are
// ordered by name, which differs from the table order.
func parquetSchema(t *table.Table) (*parquet.Schema, []int, error) {
	group := make(parquet.Group, len(t.Fieldnames))
	for j, name := range t.Fieldnames {
		if _, dup := group[name]; dup {
			return nil, nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate column %q cannot be written to parquet", name),
				map[string]any{"column": name})
		}
		group[name] = parquetNode(t, j)
	}

	order := make([]int, len(t.Fieldnames))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.Fieldnames[order[a]] < t.Fieldnames[order[b]]
	})

	return parquet.NewSchema("benchmark", group), order, nil
}

func parquetNode(t *table.Table, j int) parquet.Node {
	for _, row := range t.Rows {
		switch row[j].Kind() {
		case table.CellIndex:
			return parquet.Optional(parquet.Int(64))
		case table.CellText:
			return parquet.Optional(parquet.String())
		case table.CellNumber:
			return parquet.Optional(parquet.Leaf(parquet.DoubleType))
		}
	}
	if t.Fieldnames[j] == table.CountFieldname {
		return parquet.Optional(parquet.Int(64))
	}
	return parquet.Optional(parquet.Leaf(parquet.DoubleType))
}

func parquetRow(cells []table.Cell, order []int) parquet.Row {
	row := make(parquet.Row, len(order))
	for col, j := range order {
		row[col] = parquetValue(cells[j], col)
	}
	return row
}

func parquetValue(c table.Cell, col int) parquet.Value {
	switch c.Kind() {
	case table.CellIndex:
		f, _ := c.Float()
		return parquet.Int64Value(int64(f)).Level(0, 1, col)
	case table.CellText:
		return parquet.ByteArrayValue([]byte(c.String())).Level(0, 1, col)
	case table.CellNumber:
		f, _ := c.Float()
		return parquet.DoubleValue(f).Level(0, 1, col)
	default:
		return parquet.NullValue().Level(0, 0, col)
	}
}
