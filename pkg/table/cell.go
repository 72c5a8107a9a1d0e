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
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty marks a missing observation.
	CellEmpty CellKind = iota
	// CellIndex is the repetition index of the row.
	CellIndex
	// CellText is a caller-supplied extra value.
	CellText
	// CellNumber is a metric observation.
	CellNumber
)

// Cell is one value of a row.
type Cell struct {
	kind CellKind
	i    int
	s    string
	f    float64
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{kind: CellEmpty} }

// Index returns a repetition index cell.
func Index(i int) Cell { return Cell{kind: CellIndex, i: i} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{kind: CellText, s: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{kind: CellNumber, f: f} }

// Kind returns the variant held by c.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether c marks a missing observation.
func (c Cell) IsEmpty() bool { return c.kind == CellEmpty }

// Float returns the numeric value of an index or number cell.
func (c Cell) Float() (float64, bool) {
	switch c.kind {
	case CellIndex:
		return float64(c.i), true
	case CellNumber:
		return c.f, true
	default:
		return 0, false
	}
}

// String renders the cell for text formats. Numbers use the shortest
// representation that round-trips; empty cells render as "".
func (c Cell) String() string {
	switch c.kind {
	case CellIndex:
		return strconv.Itoa(c.i)
	case CellText:
		return c.s
	case CellNumber:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	default:
		return ""
	}
}
