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

package serializer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		shape   Shape
		wantErr errors.ErrorCode
	}{
		{
			name:   "flat json",
			format: FormatJSON,
			data:   `[{"metric":"OVERALL","measurement":"RunTime(ms)","value":12.5}]`,
			shape:  ShapeFlat,
		},
		{
			name:   "empty flat json",
			format: FormatJSON,
			data:   `  []`,
			shape:  ShapeFlat,
		},
		{
			name:   "tree json",
			format: FormatJSON,
			data:   "\n{\"a\":{\"b\":[1,2]}}",
			shape:  ShapeTree,
		},
		{
			name:   "flat yaml",
			format: FormatYAML,
			data:   "- metric: READ\n  measurement: Operations\n  value: [1, 2]\n",
			shape:  ShapeFlat,
		},
		{
			name:   "tree yaml",
			format: FormatYAML,
			data:   "a:\n  b: [1, 2]\n",
			shape:  ShapeTree,
		},
		{name: "empty json", format: FormatJSON, data: " \n", wantErr: errors.ErrCodeMalformedInput},
		{name: "empty yaml", format: FormatYAML, data: "", wantErr: errors.ErrCodeMalformedInput},
		{name: "scalar json", format: FormatJSON, data: `42`, wantErr: errors.ErrCodeMalformedInput},
		{name: "scalar yaml", format: FormatYAML, data: "42\n", wantErr: errors.ErrCodeMalformedInput},
		{
			name:    "record without value",
			format:  FormatJSON,
			data:    `[{"metric":"READ","measurement":"Operations"}]`,
			wantErr: errors.ErrCodeMalformedInput,
		},
		{
			name:    "non-numeric leaf",
			format:  FormatJSON,
			data:    `{"a":["x"]}`,
			wantErr: errors.ErrCodeMalformedInput,
		},
		{
			name:    "null in flat json series",
			format:  FormatJSON,
			data:    `[{"metric":"OVERALL","measurement":"RunTime(ms)","value":[10,null,20]}]`,
			wantErr: errors.ErrCodeMalformedInput,
		},
		{
			name:    "null in flat yaml series",
			format:  FormatYAML,
			data:    "- metric: OVERALL\n  measurement: RunTime(ms)\n  value: [1, ~, 3]\n",
			wantErr: errors.ErrCodeMalformedInput,
		},
		{
			name:    "null in tree yaml leaf",
			format:  FormatYAML,
			data:    "x: [1, ~, 3]\n",
			wantErr: errors.ErrCodeMalformedInput,
		},
		{name: "unsupported format", format: "xml", data: "<a/>", wantErr: errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(tt.format, []byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shape, doc.Shape)
			if tt.shape == ShapeFlat {
				assert.Nil(t, doc.Tree)
				assert.IsType(t, metric.Document{}, doc.Value())
			} else {
				assert.NotNil(t, doc.Tree)
				assert.Nil(t, doc.Records)
			}
		})
	}
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadDocumentsKeepsOrder(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	var paths []string
	for i := range 20 {
		paths = append(paths, writeDoc(t, dir, fmt.Sprintf("run%02d.json", i),
			fmt.Sprintf(`[{"metric":"OVERALL","measurement":"RunTime(ms)","value":%d}]`, i)))
	}

	docs, err := LoadDocuments(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, docs, len(paths))
	for i, d := range docs {
		assert.Equal(t, paths[i], d.Source)
		f, ok := d.Records[0].Value.Float()
		require.True(t, ok)
		assert.InDelta(t, float64(i), f, 0)
	}
}

func TestLoadDocumentsFailsOnFirstError(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	good := writeDoc(t, dir, "good.json", `{"a":[1]}`)
	bad := writeDoc(t, dir, "bad.json", `{"a":"x"}`)

	docs, err := LoadDocuments(context.Background(), []string{good, bad, good})
	require.Error(t, err)
	assert.Nil(t, docs)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoadDocument_Stdin(t *testing.T) {
	orig := stdin
	t.Cleanup(func() { stdin = orig })
	stdin = strings.NewReader(`[{"metric":"READ","measurement":"Operations","value":[3]}]`)

	doc, err := LoadDocument(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", doc.Source)
	assert.Equal(t, ShapeFlat, doc.Shape)
}

func TestShapeSplitting(t *testing.T) {
	flat := &Document{Source: "a.json", Shape: ShapeFlat, Records: metric.Document{}}
	treeDoc, err := Decode(FormatJSON, []byte(`{"x":[1]}`))
	require.NoError(t, err)
	treeDoc.Source = "b.json"

	records, err := FlatDocuments([]*Document{flat, flat})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = FlatDocuments([]*Document{flat, treeDoc})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
	assert.Contains(t, err.Error(), "b.json")

	roots, err := TreeDocuments([]*Document{treeDoc})
	require.NoError(t, err)
	assert.Len(t, roots, 1)

	_, err = TreeDocuments([]*Document{flat})
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
}
