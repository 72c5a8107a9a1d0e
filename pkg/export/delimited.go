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
	"encoding/csv"
	"fmt"
	"io"

	"github.com/NVIDIA/benchmark-results/pkg/table"
)

func init() {
	Register(&DelimitedExporter{name: "csv", ext: ".csv", comma: ','})
	Register(&DelimitedExporter{name: "tsv", ext: ".tsv", comma: '\t'})
}

// DelimitedExporter writes a header row followed by one record per row.
type DelimitedExporter struct {
	name  string
	ext   string
	comma rune
}

func (e *DelimitedExporter) Name() string         { return e.name }
func (e *DelimitedExporter) Extensions() []string { return []string{e.ext} }

func (e *DelimitedExporter) Export(ctx context.Context, w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = e.comma

	if err := cw.Write(t.Fieldnames); err != nil {
		return fmt.Errorf("failed to write %s header: %w", e.name, err)
	}

	record := make([]string, len(t.Fieldnames))
	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, c := range row {
			record[j] = c.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", e.name, i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", e.name, err)
	}
	return nil
}
