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
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format from a path's
// extension. Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	if i := strings.IndexAny(path, "?#"); i >= 0 && isURL(path) {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatText
	default:
		return FormatJSON
	}
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Reader decodes JSON or YAML documents.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader returns a Reader for input. Only JSON and YAML can be read.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if input == nil {
		return nil, fmt.Errorf("input reader is nil")
	}
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("unsupported format for reading: %s", format)
	}
	return &Reader{format: format, input: input}, nil
}

// NewFileReader opens path and returns a Reader for it.
func NewFileReader(format Format, path string) (*Reader, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	r, err := NewReader(format, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Deserialize decodes the next document into v.
func (r *Reader) Deserialize(v any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format for reading: %s", r.format)
	}
	return nil
}

// Close closes the underlying file, if the Reader owns one.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// FromFile decodes the document at path into a new T. The path may be a
// local file or an http(s) URL; the format follows the extension.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	format := FormatFromPath(path)
	if format == FormatText {
		return nil, fmt.Errorf("cannot decode text file %q", path)
	}

	var src io.Reader
	if isURL(path) {
		data, err := NewHttpReader().ReadWithContext(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
		}
		src = bytes.NewReader(data)
	} else {
		r, err := NewFileReader(format, path)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		src = r.input
	}

	r, err := NewReader(format, src)
	if err != nil {
		return nil, err
	}

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &out, nil
}
