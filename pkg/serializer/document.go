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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/benchmark-results/pkg/defaults"
	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

// Shape identifies the top-level layout of a result document.
type Shape string

const (
	// ShapeFlat is a list of metric records.
	ShapeFlat Shape = "flat"
	// ShapeTree is a nested mapping with numeric-list leaves.
	ShapeTree Shape = "tree"
)

// Document is one decoded result document. Exactly one of Records and Tree
// is set, according to Shape.
type Document struct {
	Source  string
	Shape   Shape
	Records metric.Document
	Tree    *tree.Node
}

// Value returns the decoded content for serialization.
func (d *Document) Value() any {
	if d.Shape == ShapeTree {
		return d.Tree
	}
	return d.Records
}

// Decode detects the shape of data and decodes it.
func Decode(format Format, data []byte) (*Document, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidRequest, "unsupported format for deserialization: %s", format)
	}
}

func decodeJSON(data []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "document is empty")
	}

	switch trimmed[0] {
	case '[':
		var records metric.Document
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, malformed("failed to decode flat JSON document", err)
		}
		return &Document{Shape: ShapeFlat, Records: records}, nil
	case '{':
		root := tree.NewInternal()
		if err := json.Unmarshal(trimmed, root); err != nil {
			return nil, malformed("failed to decode tree JSON document", err)
		}
		return &Document{Shape: ShapeTree, Tree: root}, nil
	default:
		return nil, errors.New(errors.ErrCodeMalformedInput,
			"document must be a list of metric records or a mapping of metrics")
	}
}

func decodeYAML(data []byte) (*Document, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, malformed("failed to decode YAML document", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "document is empty")
	}

	top := doc.Content[0]
	for top.Kind == yaml.AliasNode && top.Alias != nil {
		top = top.Alias
	}

	switch top.Kind {
	case yaml.SequenceNode:
		var records metric.Document
		if err := top.Decode(&records); err != nil {
			return nil, malformed("failed to decode flat YAML document", err)
		}
		return &Document{Shape: ShapeFlat, Records: records}, nil
	case yaml.MappingNode:
		root := tree.NewInternal()
		if err := top.Decode(root); err != nil {
			return nil, malformed("failed to decode tree YAML document", err)
		}
		return &Document{Shape: ShapeTree, Tree: root}, nil
	default:
		return nil, errors.New(errors.ErrCodeMalformedInput,
			"document must be a list of metric records or a mapping of metrics")
	}
}

// malformed keeps the code of a structured cause and otherwise marks the
// failure as malformed input.
func malformed(msg string, err error) error {
	if code := errors.CodeOf(err); code != "" && code != errors.ErrCodeMalformedInput {
		return errors.Wrap(code, msg, err)
	}
	return errors.Wrap(errors.ErrCodeMalformedInput, msg, err)
}

// LoadDocument reads and decodes one document from a file, URL or standard input.
func LoadDocument(ctx context.Context, p string) (*Document, error) {
	r, err := OpenReader(ctx, p)
	if err != nil {
		loadErrors.Inc()
		return nil, err
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr, "path", p)
		}
	}()

	data, err := r.ReadAll()
	if err != nil {
		loadErrors.Inc()
		return nil, err
	}

	doc, err := Decode(r.Format(), data)
	if err != nil {
		loadErrors.Inc()
		return nil, errors.WrapWithContext(errors.CodeOf(err), fmt.Sprintf("failed to load %s", displayPath(p)), err,
			map[string]any{"path": displayPath(p)})
	}
	doc.Source = displayPath(p)

	documentsLoaded.WithLabelValues(string(doc.Shape)).Inc()
	slog.Debug("loaded document",
		"path", doc.Source,
		"shape", doc.Shape,
		"bytes", len(data))

	return doc, nil
}

// LoadDocuments reads paths concurrently and returns the documents in the
// order given. The first failure cancels the remaining reads.
func LoadDocuments(ctx context.Context, paths []string) ([]*Document, error) {
	docs := make([]*Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.LoaderConcurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := LoadDocument(gctx, p)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FlatDocuments returns the records of every document, failing with
// MalformedInput if any document is a tree.
func FlatDocuments(docs []*Document) ([]metric.Document, error) {
	out := make([]metric.Document, 0, len(docs))
	for _, d := range docs {
		if d.Shape != ShapeFlat {
			return nil, shapeMismatch(d, ShapeFlat)
		}
		out = append(out, d.Records)
	}
	return out, nil
}

// TreeDocuments returns the root of every document, failing with
// MalformedInput if any document is flat.
func TreeDocuments(docs []*Document) ([]*tree.Node, error) {
	out := make([]*tree.Node, 0, len(docs))
	for _, d := range docs {
		if d.Shape != ShapeTree {
			return nil, shapeMismatch(d, ShapeTree)
		}
		out = append(out, d.Tree)
	}
	return out, nil
}

func shapeMismatch(d *Document, want Shape) error {
	return errors.NewWithContext(errors.ErrCodeMalformedInput,
		fmt.Sprintf("%s is a %s document, expected %s", d.Source, d.Shape, want),
		map[string]any{"path": d.Source, "shape": string(d.Shape), "expected": string(want)})
}

func displayPath(p string) string {
	if isStdio(p) {
		return "<stdin>"
	}
	return p
}
