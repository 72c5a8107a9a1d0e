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

package config

import (
	"context"
	"fmt"
	"slices"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
	"github.com/NVIDIA/benchmark-results/pkg/export"
	"github.com/NVIDIA/benchmark-results/pkg/metric"
	"github.com/NVIDIA/benchmark-results/pkg/reduce"
	"github.com/NVIDIA/benchmark-results/pkg/serializer"
	"github.com/NVIDIA/benchmark-results/pkg/table"
	"github.com/NVIDIA/benchmark-results/pkg/tree"
)

type Config struct {
	// separator joins path segments into column names.
	separator string

	// op reduces non-time measurements. Empty until set.
	op string

	// opTime reduces measurements whose name mentions time or latency.
	opTime string

	// format is the export format; empty picks one from the output path.
	format string

	// countMetric and countMeasurement name the flat metric whose length
	// sets the row count.
	countMetric      string
	countMeasurement string

	// countKey is the tree leaf whose length sets the row count.
	countKey string
}

func (c *Config) Separator() string {
	return c.separator
}

func (c *Config) Op() string {
	return c.op
}

func (c *Config) OpTime() string {
	return c.opTime
}

func (c *Config) Format() string {
	return c.format
}

func (c *Config) CountMetric() string {
	return c.countMetric
}

func (c *Config) CountMeasurement() string {
	return c.countMeasurement
}

func (c *Config) CountKey() string {
	return c.countKey
}

// Selector builds the operator selector. It fails if no operator was set.
func (c *Config) Selector() (*reduce.Selector, error) {
	if c.op == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("a reduction operator is required, one of %v", reduce.SupportedOperators()))
	}
	return reduce.NewSelector(reduce.Operator(c.op), reduce.Operator(c.opTime))
}

// Validate checks every set value.
func (c *Config) Validate() error {
	if c.separator == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "separator cannot be empty")
	}
	if c.op != "" {
		if _, err := reduce.ParseOperator(c.op); err != nil {
			return err
		}
	}
	if _, err := reduce.ParseOperator(c.opTime); err != nil {
		return err
	}
	if c.format != "" && !slices.Contains(export.SupportedFormats(), c.format) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid format: %s (must be one of %v)", c.format, export.SupportedFormats()),
			map[string]any{"format": c.format})
	}
	if c.countMetric == "" || c.countMeasurement == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "count metric and measurement cannot be empty")
	}
	if c.countKey == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "count key cannot be empty")
	}
	return nil
}

type Option func(*Config)

func WithSeparator(sep string) Option {
	return func(c *Config) {
		c.separator = sep
	}
}

func WithOp(op string) Option {
	return func(c *Config) {
		c.op = op
	}
}

func WithOpTime(op string) Option {
	return func(c *Config) {
		c.opTime = op
	}
}

func WithFormat(format string) Option {
	return func(c *Config) {
		c.format = format
	}
}

func WithCountMetric(metric, measurement string) Option {
	return func(c *Config) {
		c.countMetric = metric
		c.countMeasurement = measurement
	}
}

func WithCountKey(key string) Option {
	return func(c *Config) {
		c.countKey = key
	}
}

func NewConfig(options ...Option) *Config {
	c := &Config{
		separator:        table.DefaultSeparator,
		opTime:           string(reduce.DefaultTimeOperator),
		countMetric:      metric.MetricOverall,
		countMeasurement: metric.MeasurementRunTime,
		countKey:         tree.KeyTotalOperations,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// File is the on-disk form of the defaults file.
type File struct {
	Separator        string `json:"separator,omitempty" yaml:"separator,omitempty"`
	Op               string `json:"op,omitempty" yaml:"op,omitempty"`
	OpTime           string `json:"opTime,omitempty" yaml:"opTime,omitempty"`
	Format           string `json:"format,omitempty" yaml:"format,omitempty"`
	CountMetric      string `json:"countMetric,omitempty" yaml:"countMetric,omitempty"`
	CountMeasurement string `json:"countMeasurement,omitempty" yaml:"countMeasurement,omitempty"`
	CountKey         string `json:"countKey,omitempty" yaml:"countKey,omitempty"`
}

// Options returns an Option for every field set in f.
func (f *File) Options() []Option {
	if f == nil {
		return nil
	}
	var opts []Option
	if f.Separator != "" {
		opts = append(opts, WithSeparator(f.Separator))
	}
	if f.Op != "" {
		opts = append(opts, WithOp(f.Op))
	}
	if f.OpTime != "" {
		opts = append(opts, WithOpTime(f.OpTime))
	}
	if f.Format != "" {
		opts = append(opts, WithFormat(f.Format))
	}
	if f.CountMetric != "" || f.CountMeasurement != "" {
		m, ms := f.CountMetric, f.CountMeasurement
		opts = append(opts, func(c *Config) {
			if m != "" {
				c.countMetric = m
			}
			if ms != "" {
				c.countMeasurement = ms
			}
		})
	}
	if f.CountKey != "" {
		opts = append(opts, WithCountKey(f.CountKey))
	}
	return opts
}

// Load reads a defaults file. An empty path yields an empty File.
func Load(ctx context.Context, path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	f, err := serializer.FromFile[File](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return f, nil
}
