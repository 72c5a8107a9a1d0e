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
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

// Records merges flat documents into one. Every output value is a series.
func Records(docs ...metric.Document) metric.Document {
	out := metric.Document{}
	index := make(map[metric.Identity]int)
	values := make([][]float64, 0)

	for _, doc := range docs {
		for _, rec := range doc {
			i, found := index[rec.Identity]
			if !found {
				i = len(out)
				index[rec.Identity] = i
				out = append(out, metric.Record{Identity: rec.Identity})
				values = append(values, make([]float64, 0, rec.Value.Len()))
			}
			values[i] = append(values[i], rec.Value.Values()...)
		}
		documentsMerged.WithLabelValues(shapeFlat).Inc()
	}

	for i := range out {
		out[i].Value = metric.Series(values[i]...)
	}

	slog.Debug("merged flat documents",
		slog.Int("documents", len(docs)),
		slog.Int("metrics", len(out)))

	return out
}

// Trees merges nested documents into a new tree.
func Trees(docs ...*tree.Node) (*tree.Node, error) {
	out := tree.NewInternal()
	for i, doc := range docs {
		if doc == nil {
			return nil, errors.Newf(errors.ErrCodeMalformedInput, "document %d is empty", i)
		}
		if doc.IsLeaf() {
			return nil, errors.Newf(errors.ErrCodeMalformedInput,
				"document %d must be a mapping at the root, got a leaf", i)
		}
		if err := mergeInto(out, doc, nil); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		documentsMerged.WithLabelValues(shapeTree).Inc()
	}

	slog.Debug("merged tree documents",
		slog.Int("documents", len(docs)),
		slog.Int("keys", out.Len()))

	return out, nil
}

// mergeInto folds src into dst. Both must be internal nodes.
func mergeInto(dst, src *tree.Node, path []string) error {
	for _, key := range src.Keys() {
		child, _ := src.Get(key)
		existing, found := dst.Get(key)

		if !found {
			dst.Set(key, child.Clone())
			continue
		}

		switch {
		case existing.IsLeaf() && child.IsLeaf():
			existing.Append(child.Values()...)
		case !existing.IsLeaf() && !child.IsLeaf():
			if err := mergeInto(existing, child, append(path, key)); err != nil {
				return err
			}
		default:
			full := strings.Join(append(append([]string{}, path...), key), "/")
			mixedShapes.Inc()
			return errors.NewWithContext(errors.ErrCodeMixedNodeShape,
				fmt.Sprintf("key %q is a %s in one document and a %s in another",
					full, existing.Kind(), child.Kind()),
				map[string]any{"path": full})
		}
	}
	return nil
}
