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

package table

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// ExtraColumn is a caller-supplied column with one value per row.
type ExtraColumn struct {
	Fieldname string   `json:"fieldname" yaml:"fieldname"`
	Values    []string `json:"values" yaml:"values"`
}

// ParseExtraColumn parses FIELDNAME=VALUE[,VALUE...].
func ParseExtraColumn(s string) (ExtraColumn, error) {
	name, list, _ := strings.Cut(s, "=")
	if name == "" {
		return ExtraColumn{}, errors.Newf(errors.ErrCodeInvalidRequest, "extra column %q: FIELDNAME cannot be empty", s)
	}
	if list == "" {
		return ExtraColumn{}, errors.Newf(errors.ErrCodeInvalidRequest, "extra column %q: VALUE list cannot be empty", s)
	}
	values := strings.Split(list, ",")
	for _, v := range values {
		if v == "" {
			return ExtraColumn{}, errors.Newf(errors.ErrCodeInvalidRequest, "extra column %q: VALUE cannot be empty", s)
		}
	}
	return ExtraColumn{Fieldname: name, Values: values}, nil
}

// String returns the column in FIELDNAME=VALUE,... form.
func (c ExtraColumn) String() string {
	return c.Fieldname + "=" + strings.Join(c.Values, ",")
}

// ExtraColumns accumulates extra columns and validates them against a row
// count before any row is built.
type ExtraColumns struct {
	cols []ExtraColumn
}

// NewExtraColumns creates a builder seeded with cols.
func NewExtraColumns(cols ...ExtraColumn) *ExtraColumns {
	b := &ExtraColumns{}
	for _, c := range cols {
		b.Add(c)
	}
	return b
}

// Add appends a column.
func (b *ExtraColumns) Add(c ExtraColumn) *ExtraColumns {
	values := make([]string, len(c.Values))
	copy(values, c.Values)
	b.cols = append(b.cols, ExtraColumn{Fieldname: c.Fieldname, Values: values})
	return b
}

// AddSpecs parses and appends each FIELDNAME=VALUE,... definition.
func (b *ExtraColumns) AddSpecs(specs ...string) error {
	for _, s := range specs {
		c, err := ParseExtraColumn(s)
		if err != nil {
			return err
		}
		b.Add(c)
	}
	return nil
}

// Len returns the number of columns.
func (b *ExtraColumns) Len() int {
	if b == nil {
		return 0
	}
	return len(b.cols)
}

// Columns returns the accumulated columns.
func (b *ExtraColumns) Columns() []ExtraColumn {
	if b == nil {
		return nil
	}
	out := make([]ExtraColumn, len(b.cols))
	copy(out, b.cols)
	return out
}

// Validate checks every column has exactly rows values.
func (b *ExtraColumns) Validate(rows int) error {
	if b == nil {
		return nil
	}
	return validateExtras(b.cols, rows)
}

func validateExtras(cols []ExtraColumn, rows int) error {
	for _, c := range cols {
		if len(c.Values) != rows {
			return errors.NewWithContext(errors.ErrCodeExtraColumnLengthMismatch,
				fmt.Sprintf("extra column %q must have exactly %d values, got %d", c.Fieldname, rows, len(c.Values)),
				map[string]any{"fieldname": c.Fieldname, "rows": rows, "values": len(c.Values)})
		}
	}
	return nil
}
