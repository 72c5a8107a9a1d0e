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
	"text/tabwriter"

	"github.com/NVIDIA/benchmark-results/pkg/table"
)

func init() {
	Register(&TextExporter{})
}

// TextExporter writes space aligned columns for terminals.
type TextExporter struct{}

func (e *TextExporter) Name() string         { return "table" }
func (e *TextExporter) Extensions() []string { return []string{".txt"} }

func (e *TextExporter) Export(ctx context.Context, w io.Writer, t *table.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, line := range t.Strings() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, field := range line {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			if field == "" && i > 0 {
				field = "-"
			}
			fmt.Fprint(tw, field)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
