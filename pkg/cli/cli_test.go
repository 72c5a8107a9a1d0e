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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

const (
	ycsbRun1 = `[
  {"metric": "OVERALL", "measurement": "RunTime(ms)", "value": 1000},
  {"metric": "OVERALL", "measurement": "Throughput(ops/sec)", "value": 500},
  {"metric": "READ", "measurement": "AverageLatency(us)", "value": 300},
  {"metric": "CLEANUP", "measurement": "Operations", "value": 1}
]`
	ycsbRun2 = `[
  {"metric": "OVERALL", "measurement": "RunTime(ms)", "value": 1200},
  {"metric": "OVERALL", "measurement": "Throughput(ops/sec)", "value": 450},
  {"metric": "READ", "measurement": "AverageLatency(us)", "value": 320}
]`
	arangoRun1 = `{
  "totalNumberOfOperations": [1000],
  "CRUD": {"insert": {"avg": [2.5], "p99": [9]}}
}`
	arangoRun2 = `{
  "totalNumberOfOperations": [1000],
  "CRUD": {"insert": {"avg": [2.7]}}
}`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(data)
}

func TestCombineFlat(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "combined.json")

	require.NoError(t, run(t, "combine", "-o", out,
		writeFile(t, dir, "run1.json", ycsbRun1),
		writeFile(t, dir, "run2.json", ycsbRun2)))

	var got []struct {
		Metric      string    `json:"metric"`
		Measurement string    `json:"measurement"`
		Value       []float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(readFile(t, out)), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "RunTime(ms)", got[0].Measurement)
	assert.Equal(t, []float64{1000, 1200}, got[0].Value)
	assert.Equal(t, "CLEANUP", got[3].Metric)
	assert.Equal(t, []float64{1}, got[3].Value)
}

func TestCombineTreeYAML(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "combined.yaml")

	require.NoError(t, run(t, "combine", "--format", "yaml", "-o", out,
		writeFile(t, dir, "a1.json", arangoRun1),
		writeFile(t, dir, "a2.json", arangoRun2)))

	got := readFile(t, out)
	assert.Contains(t, got, "totalNumberOfOperations: [1000, 1000]")
	assert.Contains(t, got, "avg: [2.5, 2.7]")
	assert.Contains(t, got, "p99: [9]")
	assert.Less(t, strings.Index(got, "totalNumberOfOperations"), strings.Index(got, "CRUD"))
}

func TestCombineMixedShapes(t *testing.T) {
	dir := t.TempDir()
	err := run(t, "combine", "-o", filepath.Join(dir, "out.json"),
		writeFile(t, dir, "flat.json", ycsbRun1),
		writeFile(t, dir, "tree.json", arangoRun1))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
}

func TestCombineMixedNodeShape(t *testing.T) {
	dir := t.TempDir()
	err := run(t, "combine", "-o", filepath.Join(dir, "out.json"),
		writeFile(t, dir, "a.json", `{"x": {"y": [1]}}`),
		writeFile(t, dir, "b.json", `{"x": [2]}`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMixedNodeShape))
}

func TestUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	flat := writeFile(t, dir, "run1.json", ycsbRun1)
	tree := writeFile(t, dir, "a1.json", arangoRun1)

	tests := []struct {
		name string
		args []string
	}{
		{"combine", []string{"combine", flat}},
		{"reduce", []string{"reduce", "--op", "avg", flat}},
		{"extract", []string{"extract", flat}},
		{"convert", []string{"convert", tree}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, "missing-dir", tt.name+".out")
			args := append([]string{tt.args[0], "-o", out}, tt.args[1:]...)
			err := run(t, args...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInternal), "got %v", err)
			assert.NoFileExists(t, out)
		})
	}
}

func TestReduce(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "combined.json", `[
  {"metric": "OVERALL", "measurement": "RunTime(ms)", "value": [10, 20]},
  {"metric": "OVERALL", "measurement": "Throughput(ops/sec)", "value": [5, 7]},
  {"metric": "CLEANUP", "measurement": "Operations", "value": 3}
]`)
	out := filepath.Join(dir, "reduced.json")

	require.NoError(t, run(t, "reduce", "--op", "max", "-o", out, in))

	assert.JSONEq(t, `[
  {"metric": "OVERALL", "measurement": "RunTime(ms)", "value": 15},
  {"metric": "OVERALL", "measurement": "Throughput(ops/sec)", "value": 7},
  {"metric": "CLEANUP", "measurement": "Operations", "value": 3}
]`, readFile(t, out))
}

func TestReduceRequiresOperator(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", ycsbRun1)

	err := run(t, "reduce", "-o", filepath.Join(dir, "out.json"), in)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	err = run(t, "reduce", "--op", "mode", "-o", filepath.Join(dir, "out.json"), in)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}

func TestReduceOperatorFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "benchres.yaml", "op: sum\nopTime: min\n")
	in := writeFile(t, dir, "in.json", `[
  {"metric": "READ", "measurement": "AverageLatency(us)", "value": [4, 2]},
  {"metric": "READ", "measurement": "Operations", "value": [4, 2]}
]`)
	out := filepath.Join(dir, "out.json")

	require.NoError(t, run(t, "--config", cfg, "reduce", "-o", out, in))
	assert.JSONEq(t, `[
  {"metric": "READ", "measurement": "AverageLatency(us)", "value": 2},
  {"metric": "READ", "measurement": "Operations", "value": 6}
]`, readFile(t, out))
}

func TestReduceRejectsTree(t *testing.T) {
	dir := t.TempDir()
	err := run(t, "reduce", "--op", "max", "-o", filepath.Join(dir, "out.json"),
		writeFile(t, dir, "tree.json", arangoRun1))
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")

	require.NoError(t, run(t, "extract",
		"--extra", "threads=8,16",
		"--extra", "db=redis,redis",
		"-o", out,
		writeFile(t, dir, "run1.json", ycsbRun1),
		writeFile(t, dir, "run2.json", ycsbRun2)))

	assert.Equal(t, strings.Join([]string{
		"count,threads,db,OVERALL/RunTime(ms),OVERALL/Throughput(ops/sec),READ/AverageLatency(us)",
		"0,8,redis,1000,500,300",
		"1,16,redis,1200,450,320",
		"",
	}, "\n"), readFile(t, out))
}

func TestExtractSeparatorAndRows(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.tsv")

	require.NoError(t, run(t, "extract", "--sep", "@", "--rows", "1", "-o", out,
		writeFile(t, dir, "run1.json", ycsbRun1)))

	lines := strings.Split(strings.TrimSpace(readFile(t, out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "count\tOVERALL@RunTime(ms)\tOVERALL@Throughput(ops/sec)\tREAD@AverageLatency(us)\tCLEANUP@Operations", lines[0])
}

func TestExtractErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "run1.json", ycsbRun1)
	out := filepath.Join(dir, "out.csv")

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"extra length mismatch", []string{"extract", "--extra", "threads=8,16", "-o", out, in}, errors.ErrCodeExtraColumnLengthMismatch},
		{"malformed extra", []string{"extract", "--extra", "threads", "-o", out, in}, errors.ErrCodeInvalidRequest},
		{"unknown count metric", []string{"extract", "--count-metric", "TOTAL", "-o", out, in}, errors.ErrCodeUnknownMetric},
		{"unknown format", []string{"extract", "--format", "xlsx", "-o", out, in}, errors.ErrCodeInvalidRequest},
		{"negative rows", []string{"extract", "--rows=-1", "-o", out, in}, errors.ErrCodeInvalidRequest},
		{"missing input", []string{"extract", "-o", out, filepath.Join(dir, "missing.json")}, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")

	require.NoError(t, run(t, "convert", "--extra", "collection=docs,edges", "-o", out,
		writeFile(t, dir, "a1.json", arangoRun1),
		writeFile(t, dir, "a2.json", arangoRun2)))

	assert.Equal(t, strings.Join([]string{
		"count,collection,totalNumberOfOperations,CRUD/insert/avg,CRUD/insert/p99",
		"0,docs,1000,2.5,9",
		"1,edges,1000,2.7,",
		"",
	}, "\n"), readFile(t, out))
}

func TestConvertFormats(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "a1.json", arangoRun1)

	html := filepath.Join(dir, "results.html")
	require.NoError(t, run(t, "convert", "-o", html, in))
	assert.Contains(t, readFile(t, html), "CRUD/insert/avg")

	pq := filepath.Join(dir, "results.parquet")
	require.NoError(t, run(t, "convert", "-o", pq, in))
	assert.True(t, strings.HasPrefix(readFile(t, pq), "PAR1"))

	txt := filepath.Join(dir, "results.out")
	require.NoError(t, run(t, "convert", "--format", "table", "-o", txt, in))
	assert.True(t, strings.HasPrefix(readFile(t, txt), "count  "))
}

func TestConvertCountKey(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "a1.json", arangoRun1)
	out := filepath.Join(dir, "out.csv")

	err := run(t, "convert", "--count-key", "missing", "-o", out, in)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownMetric))

	require.NoError(t, run(t, "convert", "--count-key", "CRUD/insert/avg", "-o", out, in))
	assert.Len(t, strings.Split(strings.TrimSpace(readFile(t, out)), "\n"), 2)

	err = run(t, "convert", "-o", out, writeFile(t, dir, "flat.json", ycsbRun1))
	assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput))
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "benchres.prom")

	require.NoError(t, run(t, "--metrics-file", metrics, "extract", "-o", filepath.Join(dir, "out.csv"),
		writeFile(t, dir, "run1.json", ycsbRun1)))

	got := readFile(t, metrics)
	assert.Contains(t, got, "benchres_table_rows_total")
	assert.Contains(t, got, "benchres_table_metrics_omitted_total")
	assert.Contains(t, got, `benchres_export_tables_total{format="csv"}`)
}
