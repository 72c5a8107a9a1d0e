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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
)

func mustSelector(t *testing.T, def, timeOp Operator) *Selector {
	t.Helper()
	sel, err := NewSelector(def, timeOp)
	require.NoError(t, err)
	return sel
}

func TestSelectorTimeRule(t *testing.T) {
	sel := mustSelector(t, OpMax, OpAvg)

	tests := []struct {
		measurement string
		want        Operator
	}{
		{"RunTime(ms)", OpAvg},
		{"AverageLatency(us)", OpAvg},
		{"95thPercentileLatency(us)", OpAvg},
		{"TIME", OpAvg},
		{"Operations", OpMax},
		{"Throughput(ops/sec)", OpMax},
		{"Return=OK", OpMax},
	}

	for _, tt := range tests {
		t.Run(tt.measurement, func(t *testing.T) {
			id := metric.Identity{Metric: "OVERALL", Measurement: tt.measurement}
			assert.Equal(t, tt.want, sel.Select(id))
		})
	}
}

func TestSelectorMatchesMeasurementOnly(t *testing.T) {
	sel := mustSelector(t, OpSum, OpMin)
	id := metric.Identity{Metric: "LATENCY-TIME", Measurement: "Operations"}
	assert.Equal(t, OpSum, sel.Select(id))
}

func TestSelectorCustomRule(t *testing.T) {
	sel := mustSelector(t, OpSum, OpAvg)
	require.NoError(t, sel.AddRule(Rule{
		Name:  "throughput",
		Match: MeasurementContains("throughput"),
		Op:    OpMedian,
	}))

	assert.Equal(t, OpMedian, sel.Select(metric.Identity{Metric: "OVERALL", Measurement: "Throughput(ops/sec)"}))
	assert.Equal(t, OpAvg, sel.Select(metric.Identity{Metric: "OVERALL", Measurement: "RunTime(ms)"}))

	err := sel.AddRule(Rule{Name: "bad", Match: IsTimeMeasurement, Op: "p50"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}

func TestNewSelectorValidates(t *testing.T) {
	_, err := NewSelector("mix", OpAvg)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	_, err = NewSelector(OpMax, "mean")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}

func TestReduce(t *testing.T) {
	sel := mustSelector(t, OpSum, OpAvg)

	rec, err := Reduce(metric.NewRecord("READ", "Operations", metric.Series(1, 2, 3)), sel)
	require.NoError(t, err)
	v, ok := rec.Value.Float()
	require.True(t, ok)
	assert.Equal(t, 6.0, v)

	rec, err = Reduce(metric.NewRecord("OVERALL", "RunTime(ms)", metric.Series(2, 4, 9)), sel)
	require.NoError(t, err)
	v, _ = rec.Value.Float()
	assert.Equal(t, 5.0, v, "time measurement should use the time operator")
}

func TestReduceIsIdempotent(t *testing.T) {
	sel := mustSelector(t, OpSum, OpAvg)
	in := metric.NewRecord("READ", "Operations", metric.Scalar(42))

	once, err := Reduce(in, sel)
	require.NoError(t, err)
	assert.Equal(t, in, once)

	twice, err := Reduce(once, sel)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestReduceEmptySeries(t *testing.T) {
	sel := mustSelector(t, OpMax, OpAvg)
	_, err := Reduce(metric.NewRecord("READ", "Operations", metric.Series()), sel)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptySequence))
	assert.Contains(t, err.Error(), "READ in Operations")
}

func TestDocument(t *testing.T) {
	sel := mustSelector(t, OpMax, OpAvg)
	doc := metric.Document{
		metric.NewRecord("OVERALL", "RunTime(ms)", metric.Series(10, 20)),
		metric.NewRecord("READ", "Operations", metric.Series(5, 7)),
		metric.NewRecord("READ", "Return=OK", metric.Scalar(3)),
	}

	out, err := Document(doc, sel)
	require.NoError(t, err)
	require.Len(t, out, 3)

	want := []float64{15, 7, 3}
	for i, rec := range out {
		assert.Equal(t, doc[i].Identity, rec.Identity)
		v, ok := rec.Value.Float()
		require.True(t, ok)
		assert.Equal(t, want[i], v)
	}

	assert.True(t, doc[0].Value.IsSeries(), "input must not be modified")
}

func TestDocumentFailsFast(t *testing.T) {
	sel := mustSelector(t, OpMax, OpAvg)
	doc := metric.Document{
		metric.NewRecord("READ", "Operations", metric.Series()),
		metric.NewRecord("READ", "Return=OK", metric.Series(1)),
	}

	out, err := Document(doc, sel)
	assert.Nil(t, out)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptySequence))
}
