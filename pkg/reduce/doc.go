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

// Package reduce collapses multi-valued metrics into a single scalar.
//
// # Operators
//
// The closed set of operators is max, min, avg (arithmetic mean), median and
// sum. Every operator fails with EMPTY_SEQUENCE on zero values.
//
// # Operator selection
//
// A Selector is an ordered dispatch table of rules. Each rule pairs a
// predicate over the metric identity with an operator; the first matching
// rule wins and the default operator applies otherwise. NewSelector installs
// the conventional rule that time and latency measurements (case-insensitive
// substring match on the measurement name) use their own operator, avg by
// default:
//
//	sel, err := reduce.NewSelector(reduce.OpMax, reduce.OpAvg)
//	rec, err = reduce.Reduce(rec, sel)
//
// Reduction is idempotent: a record that already holds a scalar is returned
// unchanged.
package reduce
