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
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/benchmark-results/pkg/defaults"
	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// StdioPath names standard input or output in place of a file path.
const StdioPath = "-"

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// FormatFromPath determines the document format based on file extension.
// Supported extensions:
//   - .yaml, .yml → FormatYAML
//   - anything else → FormatJSON
//
// URLs are matched on their path, ignoring any query string.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	p := filePath
	if isRemote(filePath) {
		if u, err := url.Parse(filePath); err == nil {
			p = u.Path
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		slog.Debug("no recognized file extension, reading as JSON", "path", filePath)
		return FormatJSON
	}
}

func isStdio(p string) bool {
	return p == "" || p == StdioPath
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Reader handles deserialization of documents from JSON or YAML.
//
// Resource Management:
//   - Close must be called to release resources when using OpenReader
//   - Safe to call Close multiple times (idempotent)
//   - Close is a no-op for readers created with NewReader from non-closeable sources
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// If input implements io.Closer, it will be closed by Reader.Close().
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, errors.Newf(errors.ErrCodeInvalidRequest, "unknown format: %s", format)
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// OpenReader opens a file, URL or standard input and picks the format from
// the path. Standard input is always read as JSON and is never closed.
func OpenReader(ctx context.Context, p string) (*Reader, error) {
	switch {
	case isStdio(p):
		return &Reader{format: FormatJSON, input: stdin}, nil

	case isRemote(p):
		data, err := defaultHTTPReader.ReadWithContext(ctx, p)
		if err != nil {
			return nil, err
		}
		return &Reader{format: FormatFromPath(p), input: bytes.NewReader(data)}, nil

	default:
		file, err := os.Open(p)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "input file not found", err,
					map[string]any{"path": p})
			}
			return nil, fmt.Errorf("failed to open file %q: %w", p, err)
		}
		return &Reader{format: FormatFromPath(p), input: file, closer: file}, nil
	}
}

// Format returns the format the reader decodes.
func (r *Reader) Format() Format {
	return r.format
}

// ReadAll returns the raw bytes of the input, capped at defaults.MaxDocumentBytes.
func (r *Reader) ReadAll() ([]byte, error) {
	if r == nil || r.input == nil {
		return nil, errors.New(errors.ErrCodeInternal, "input source is nil")
	}
	data, err := io.ReadAll(io.LimitReader(r.input, defaults.MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) > defaults.MaxDocumentBytes {
		return nil, errors.Newf(errors.ErrCodeMalformedInput, "document exceeds %d bytes", defaults.MaxDocumentBytes)
	}
	return data, nil
}

// Deserialize reads data from the input source and unmarshals it into v.
// v must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return errors.New(errors.ErrCodeInternal, "reader is nil")
	}

	if r.input == nil {
		return errors.New(errors.ErrCodeInternal, "input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeMalformedInput, "failed to decode JSON", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeMalformedInput, "failed to decode YAML", err)
		}
		return nil

	default:
		return errors.Newf(errors.ErrCodeInvalidRequest, "unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
// Safe to call on a nil Reader and safe to call more than once.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// FromFile reads and deserializes a file path, URL, or standard input into type T.
//
// Example:
//
//	cfg, err := FromFile[config.File](ctx, "benchres.yaml")
func FromFile[T any](ctx context.Context, p string) (*T, error) {
	ser, err := OpenReader(ctx, p)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", p, err)
	}

	slog.Debug("successfully loaded object from file",
		slog.String("path", p),
	)

	return &r, nil
}
