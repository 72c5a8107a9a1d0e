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

// Package serializer reads and writes benchmark result documents.
//
// Two document shapes are accepted, each in JSON or YAML:
//   - Flat: a list of {metric, measurement, value} records (YCSB style)
//   - Tree: a mapping whose leaves are numeric lists (arangobench style)
//
// The shape is detected from the top-level value, so callers do not need to
// know in advance which tool produced a file.
//
// Usage:
//
//	docs, err := serializer.LoadDocuments(ctx, []string{"run1.json", "run2.json"})
//	if err != nil {
//		return err
//	}
//
//	w, err := serializer.NewFileWriter(serializer.FormatJSON, "merged.json")
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, docs[0].Records); err != nil {
//		return err
//	}
//
// Inputs:
//   - An empty path or "-" reads standard input as JSON
//   - http:// and https:// URLs are fetched with HTTPReader
//   - Files ending in .yaml or .yml decode as YAML, everything else as JSON
//
// LoadDocuments reads several inputs in parallel while keeping their order.
package serializer
