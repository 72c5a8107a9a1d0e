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

package metric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindScalar is a single reduced number.
	KindScalar Kind = iota
	// KindSeries is a sequence of per-repetition numbers.
	KindSeries
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSeries:
		return "series"
	default:
		return "unknown"
	}
}

// Value is either a scalar or a series of numbers.
// The zero Value is the scalar 0.
type Value struct {
	kind   Kind
	scalar float64
	series []float64
}

// Scalar creates a scalar Value.
func Scalar(v float64) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Series creates a series Value. The slice is copied.
func Series(vs ...float64) Value {
	s := make([]float64, len(vs))
	copy(s, vs)
	return Value{kind: KindSeries, series: s}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSeries reports whether v holds a series.
func (v Value) IsSeries() bool {
	return v.kind == KindSeries
}

// Float returns the scalar and true, or 0 and false for a series.
func (v Value) Float() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

// Values returns a copy of the numbers held by v. A scalar yields a
// one-element slice.
func (v Value) Values() []float64 {
	if v.kind == KindScalar {
		return []float64{v.scalar}
	}
	out := make([]float64, len(v.series))
	copy(out, v.series)
	return out
}

// Len returns the number of observations in v. A scalar counts as one.
func (v Value) Len() int {
	if v.kind == KindScalar {
		return 1
	}
	return len(v.series)
}

// At returns the i-th observation and whether it exists.
func (v Value) At(i int) (float64, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	if v.kind == KindScalar {
		return v.scalar, true
	}
	return v.series[i], true
}

// String returns a compact representation of the value.
func (v Value) String() string {
	if v.kind == KindScalar {
		return strconv.FormatFloat(v.scalar, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v.series)
}

// MarshalJSON encodes a scalar as a number and a series as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindSeries {
		if v.series == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.series)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON decodes a number or an array of numbers.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errors.New(errors.ErrCodeMalformedInput, "value must not be null")
	}
	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return errors.Wrap(errors.ErrCodeMalformedInput, "value must be an array of numbers", err)
		}
		series := make([]float64, len(elems))
		for i, elem := range elems {
			if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
				return errors.Newf(errors.ErrCodeMalformedInput, "value[%d] must be a number", i)
			}
			if err := json.Unmarshal(elem, &series[i]); err != nil {
				return errors.Wrap(errors.ErrCodeMalformedInput, fmt.Sprintf("value[%d] must be a number", i), err)
			}
		}
		*v = Value{kind: KindSeries, series: series}
		return nil
	}
	var scalar float64
	if err := json.Unmarshal(trimmed, &scalar); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, "value must be a number or an array of numbers", err)
	}
	*v = Scalar(scalar)
	return nil
}

// MarshalYAML encodes the value as a bare number or sequence.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == KindSeries {
		if v.series == nil {
			return []float64{}, nil
		}
		return v.series, nil
	}
	return v.scalar, nil
}

// UnmarshalYAML decodes a number or a sequence of numbers.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		series := make([]float64, len(node.Content))
		for i, elem := range node.Content {
			f, err := yamlNumber(elem)
			if err != nil {
				return errors.Wrap(errors.ErrCodeMalformedInput,
					fmt.Sprintf("value[%d] must be a number (line %d)", i, elem.Line), err)
			}
			series[i] = f
		}
		*v = Value{kind: KindSeries, series: series}
		return nil
	case yaml.ScalarNode:
		scalar, err := yamlNumber(node)
		if err != nil {
			return errors.Wrap(errors.ErrCodeMalformedInput, "value must be a number", err)
		}
		*v = Scalar(scalar)
		return nil
	default:
		return errors.Newf(errors.ErrCodeMalformedInput, "value must be a number or a sequence of numbers (line %d)", node.Line)
	}
}

// yamlNumber decodes a scalar node tagged !!int or !!float. Nulls and strings
// are rejected rather than decoded as zero.
func yamlNumber(node *yaml.Node) (float64, error) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("expected a scalar, got kind %d", node.Kind)
	}
	if tag := node.ShortTag(); tag != "!!int" && tag != "!!float" {
		return 0, fmt.Errorf("expected a number, got %s %q", tag, node.Value)
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return 0, err
	}
	return f, nil
}
