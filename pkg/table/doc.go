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

// Package table turns metric documents into rows and columns for tabular
// export.
//
// # Layout
//
// Every Table starts with a "count" column holding the repetition index,
// followed by caller-supplied extra columns, followed by one column per
// metric. Metric columns are named by joining the metric path with a
// separator ("/" by default):
//
//	count,threads,READ/Operations,READ/AverageLatency(us)
//	0,8,5000,312.5
//	1,8,5000,298.1
//
// # Row count
//
// The number of rows is supplied by the caller, conventionally taken from a
// metric every run records exactly once (OVERALL/RunTime(ms) for flat
// documents, totalNumberOfOperations for trees). The table never infers it.
//
// # Ragged metrics
//
// For flat documents, Select keeps only metrics with exactly one value per
// row and reports the rest with a warning. For trees, a leaf shorter than
// the row count yields empty cells past its end. Extra columns must match
// the row count exactly or the build fails before any row is assembled.
package table
