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

// Package export writes tables in tabular file formats.
//
// Every format registers itself at init time and is looked up by name or by
// file extension:
//
//	exp, err := export.Get("csv")
//	if err != nil {
//		return err
//	}
//	if err := exp.Export(ctx, os.Stdout, tbl); err != nil {
//		return err
//	}
//
// Supported formats:
//   - csv: comma separated with a header row and standard quoting
//   - tsv: tab separated, otherwise like csv
//   - parquet: one optional column per field, Snappy compressed
//   - html: a self-contained page with one line chart per metric column
//   - table: space aligned text for terminals
//
// Empty cells are written as an empty field, a parquet null, or a gap in
// the chart line.
package export
