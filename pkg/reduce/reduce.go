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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
)

// Reduce replaces a series value with the result of the operator selected
// for the record. Scalar records are returned unchanged.
func Reduce(rec metric.Record, sel *Selector) (metric.Record, error) {
	if !rec.Value.IsSeries() {
		return rec, nil
	}

	op := sel.Select(rec.Identity)
	v, err := op.Apply(rec.Value.Values())
	if err != nil {
		return metric.Record{}, errors.WrapWithContext(errors.CodeOf(err),
			fmt.Sprintf("failed to reduce %s", rec.Identity), err,
			map[string]any{
				"metric":      rec.Metric,
				"measurement": rec.Measurement,
				"operator":    op.String(),
			})
	}

	recordsReduced.WithLabelValues(op.String()).Inc()
	return metric.Record{Identity: rec.Identity, Value: metric.Scalar(v)}, nil
}

// Document reduces every record of doc and returns a new document.
// It stops at the first failure.
func Document(doc metric.Document, sel *Selector) (metric.Document, error) {
	out := make(metric.Document, 0, len(doc))
	for _, rec := range doc {
		reduced, err := Reduce(rec, sel)
		if err != nil {
			return nil, err
		}
		out = append(out, reduced)
	}

	slog.Debug("reduced document",
		slog.Int("metrics", len(out)),
		slog.String("operator", sel.Default().String()))

	return out, nil
}
