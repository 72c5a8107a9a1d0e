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

// Package metric provides the flat metric record model produced by
// load-testing tools such as YCSB.
//
// # Core Types
//
//   - Identity: the (metric, measurement) pair naming one measured quantity
//   - Value: either a single number (after reduction) or a series of numbers
//     collected across repetitions
//   - Record: an Identity plus its Value
//   - Document: the ordered list of records in one result file
//
// # Serialization
//
// Records use the same JSON keys as the tools that produce them:
//
//	[
//	  {"metric": "OVERALL", "measurement": "RunTime(ms)", "value": [1520, 1498]},
//	  {"metric": "READ", "measurement": "Operations", "value": 5000}
//	]
//
// A Value marshals to a bare number or a bare array, never to a wrapper object.
// Decoding rejects records missing any of the three keys, and values that are
// neither a number nor an array of numbers, with a MALFORMED_INPUT error.
//
// # Lookup
//
//	rec, err := doc.Find("OVERALL", "RunTime(ms)")
//	rows, err := doc.RowCount("OVERALL", "RunTime(ms)")
package metric
