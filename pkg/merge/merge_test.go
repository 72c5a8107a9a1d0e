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

package merge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

func parseTree(t *testing.T, s string) *tree.Node {
	t.Helper()
	var n tree.Node
	require.NoError(t, json.Unmarshal([]byte(s), &n))
	return &n
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name string
		docs []metric.Document
		want metric.Document
	}{
		{
			name: "same identity concatenates",
			docs: []metric.Document{
				{metric.NewRecord("A", "B", metric.Series(1))},
				{metric.NewRecord("A", "B", metric.Series(2, 3))},
			},
			want: metric.Document{metric.NewRecord("A", "B", metric.Series(1, 2, 3))},
		},
		{
			name: "scalars become a series",
			docs: []metric.Document{
				{metric.NewRecord("READ", "Operations", metric.Scalar(10))},
				{metric.NewRecord("READ", "Operations", metric.Scalar(12))},
				{metric.NewRecord("READ", "Operations", metric.Scalar(11))},
			},
			want: metric.Document{metric.NewRecord("READ", "Operations", metric.Series(10, 12, 11))},
		},
		{
			name: "disjoint identities keep first-seen order",
			docs: []metric.Document{
				{
					metric.NewRecord("X", "m1", metric.Scalar(1)),
					metric.NewRecord("Y", "m1", metric.Scalar(2)),
				},
				{
					metric.NewRecord("Z", "m1", metric.Scalar(3)),
					metric.NewRecord("X", "m1", metric.Scalar(4)),
				},
			},
			want: metric.Document{
				metric.NewRecord("X", "m1", metric.Series(1, 4)),
				metric.NewRecord("Y", "m1", metric.Series(2)),
				metric.NewRecord("Z", "m1", metric.Series(3)),
			},
		},
		{
			name: "identity needs both fields to match",
			docs: []metric.Document{
				{metric.NewRecord("READ", "Operations", metric.Scalar(1))},
				{metric.NewRecord("READ", "Return=OK", metric.Scalar(1))},
			},
			want: metric.Document{
				metric.NewRecord("READ", "Operations", metric.Series(1)),
				metric.NewRecord("READ", "Return=OK", metric.Series(1)),
			},
		},
		{
			name: "duplicates are kept",
			docs: []metric.Document{
				{metric.NewRecord("A", "B", metric.Scalar(5))},
				{metric.NewRecord("A", "B", metric.Scalar(5))},
			},
			want: metric.Document{metric.NewRecord("A", "B", metric.Series(5, 5))},
		},
		{
			name: "no documents",
			docs: nil,
			want: metric.Document{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Records(tt.docs...)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Identity, got[i].Identity)
				assert.True(t, got[i].Value.IsSeries())
				assert.Equal(t, tt.want[i].Value.Values(), got[i].Value.Values())
			}
		})
	}
}

func TestRecordsDoesNotMutateInput(t *testing.T) {
	first := metric.Document{metric.NewRecord("A", "B", metric.Series(1))}
	second := metric.Document{metric.NewRecord("A", "B", metric.Series(2))}

	_ = Records(first, second)

	assert.Equal(t, []float64{1}, first[0].Value.Values())
	assert.Equal(t, []float64{2}, second[0].Value.Values())
}

func TestTrees(t *testing.T) {
	got, err := Trees(
		parseTree(t, `{"x": {"y": [1]}}`),
		parseTree(t, `{"x": {"y": [2]}, "z": [3]}`),
	)
	require.NoError(t, err)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": {"y": [1, 2]}, "z": [3]}`, string(data))
}

func TestTreesMissingLeafContributesNothing(t *testing.T) {
	got, err := Trees(
		parseTree(t, `{"a": [1], "b": {"c": [1]}}`),
		parseTree(t, `{"a": [2]}`),
		parseTree(t, `{"b": {"c": [3], "d": [4]}, "a": [5]}`),
	)
	require.NoError(t, err)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2,5],"b":{"c":[1,3],"d":[4]}}`, string(data))
}

func TestTreesDoesNotMutateInput(t *testing.T) {
	first := parseTree(t, `{"a": {"b": [1]}}`)
	second := parseTree(t, `{"a": {"b": [2]}}`)

	_, err := Trees(first, second)
	require.NoError(t, err)

	b, err := first.Lookup("a", "b")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, b.Values())
}

func TestTreesMixedNodeShape(t *testing.T) {
	tests := []struct {
		name string
		docs []string
		path string
	}{
		{"mapping then leaf", []string{`{"a": {"b": [1]}}`, `{"a": [1]}`}, "a"},
		{"leaf then mapping", []string{`{"a": {"b": [1]}}`, `{"a": {"b": {"c": [1]}}}`}, "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := make([]*tree.Node, len(tt.docs))
			for i, s := range tt.docs {
				docs[i] = parseTree(t, s)
			}
			_, err := Trees(docs...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeMixedNodeShape), "unexpected error: %v", err)
			assert.Contains(t, err.Error(), `"`+tt.path+`"`)
		})
	}
}

func TestTreesRejectsLeafRoot(t *testing.T) {
	_, err := Trees(tree.NewLeaf(1))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))

	_, err = Trees(nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
}

func TestTreesEmpty(t *testing.T) {
	got, err := Trees()
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
