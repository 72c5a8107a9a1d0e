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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// Common identities exported for consistency.
const (
	// MetricOverall is the YCSB metric that summarizes the whole run.
	MetricOverall = "OVERALL"
	// MeasurementRunTime is the overall runtime measurement, present once per run.
	MeasurementRunTime = "RunTime(ms)"
)

// Identity names one measured quantity.
type Identity struct {
	Metric      string `json:"metric" yaml:"metric"`
	Measurement string `json:"measurement" yaml:"measurement"`
}

// FieldName joins metric and measurement with sep.
func (id Identity) FieldName(sep string) string {
	return id.Metric + sep + id.Measurement
}

// String returns a human-readable form used in diagnostics.
func (id Identity) String() string {
	return id.FieldName(" in ")
}

// Record is one named metric with its value(s).
type Record struct {
	Identity `yaml:",inline"`
	Value    Value `json:"value" yaml:"value"`
}

// NewRecord creates a Record.
func NewRecord(metric, measurement string, value Value) Record {
	return Record{
		Identity: Identity{Metric: metric, Measurement: measurement},
		Value:    value,
	}
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r.Value.IsSeries() {
		r.Value = Series(r.Value.series...)
	}
	return r
}

// rawRecord mirrors Record with optional fields so missing keys can be detected.
type rawRecord struct {
	Metric      *string `json:"metric" yaml:"metric"`
	Measurement *string `json:"measurement" yaml:"measurement"`
	Value       *Value  `json:"value" yaml:"value"`
}

func (raw rawRecord) toRecord() (Record, error) {
	switch {
	case raw.Metric == nil:
		return Record{}, errors.New(errors.ErrCodeMalformedInput, `record is missing the "metric" key`)
	case raw.Measurement == nil:
		return Record{}, errors.NewWithContext(errors.ErrCodeMalformedInput,
			`record is missing the "measurement" key`, map[string]any{"metric": *raw.Metric})
	case raw.Value == nil:
		return Record{}, errors.NewWithContext(errors.ErrCodeMalformedInput,
			`record is missing the "value" key`, map[string]any{"metric": *raw.Metric, "measurement": *raw.Measurement})
	}
	return NewRecord(*raw.Metric, *raw.Measurement, *raw.Value), nil
}

// UnmarshalJSON decodes a record and checks the required keys are present.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		if errors.CodeOf(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeMalformedInput, "record must be an object", err)
	}
	rec, err := raw.toRecord()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// UnmarshalYAML decodes a record and checks the required keys are present.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Newf(errors.ErrCodeMalformedInput, "record must be a mapping (line %d)", node.Line)
	}
	var raw rawRecord
	if err := node.Decode(&raw); err != nil {
		return err
	}
	rec, err := raw.toRecord()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// Document is the ordered list of records from one result file.
type Document []Record

// Find returns the record with the given identity.
func (d Document) Find(metric, measurement string) (Record, error) {
	for _, r := range d {
		if r.Metric == metric && r.Measurement == measurement {
			return r, nil
		}
	}
	return Record{}, errors.NewWithContext(errors.ErrCodeUnknownMetric,
		fmt.Sprintf("metric %s with measurement %s not found", metric, measurement),
		map[string]any{"metric": metric, "measurement": measurement})
}

// RowCount returns the number of observations of the given metric, which by
// convention is the canonical repetition count of the document.
func (d Document) RowCount(metric, measurement string) (int, error) {
	r, err := d.Find(metric, measurement)
	if err != nil {
		return 0, err
	}
	return r.Value.Len(), nil
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i, r := range d {
		out[i] = r.Clone()
	}
	return out
}
