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

package reduce

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// Operator names a statistical reduction.
type Operator string

const (
	OpMax    Operator = "max"
	OpMin    Operator = "min"
	OpAvg    Operator = "avg"
	OpMedian Operator = "median"
	OpSum    Operator = "sum"
)

// DefaultTimeOperator is applied to time and latency measurements unless
// configured otherwise.
const DefaultTimeOperator = OpAvg

// Func reduces a non-empty slice to one number.
type Func func(values []float64) float64

var operations = map[Operator]Func{
	OpMax:    floats.Max,
	OpMin:    floats.Min,
	OpAvg:    func(values []float64) float64 { return stat.Mean(values, nil) },
	OpMedian: median,
	OpSum:    floats.Sum,
}

// String returns the operator name.
func (o Operator) String() string {
	return string(o)
}

// IsValid reports whether o is one of the supported operators.
func (o Operator) IsValid() bool {
	_, ok := operations[o]
	return ok
}

// SupportedOperators returns the operator names in a stable order.
func SupportedOperators() []string {
	return []string{
		string(OpMax),
		string(OpMin),
		string(OpAvg),
		string(OpMedian),
		string(OpSum),
	}
}

// ParseOperator converts a name to an Operator. Matching is exact.
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown operator %q, supported values: %v", s, SupportedOperators()),
			map[string]any{"operator": s})
	}
	return op, nil
}

// Apply reduces values with o.
func (o Operator) Apply(values []float64) (float64, error) {
	fn, ok := operations[o]
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidRequest, "unknown operator %q", o)
	}
	if len(values) == 0 {
		return 0, errors.Newf(errors.ErrCodeEmptySequence, "%s of an empty sequence is undefined", o)
	}
	return fn(values), nil
}

// median averages the two middle elements when the length is even.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
