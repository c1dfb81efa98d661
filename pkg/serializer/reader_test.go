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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"recipe.yaml", FormatYAML},
		{"recipe.YML", FormatYAML},
		{"recipe.json", FormatJSON},
		{"notes.txt", FormatText},
		{"recipe", FormatJSON},
		{"https://example.com/r.yaml?v=2", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader_Unsupported(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("x")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(FormatJSON, nil); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestFromFile_Local(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "s.yaml")
	if err := os.WriteFile(yamlPath, []byte("name: scones\ncount: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "s.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"bread","count":1}`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[sample](context.Background(), yamlPath)
	if err != nil {
		t.Fatalf("FromFile(yaml) error = %v", err)
	}
	if got.Name != "scones" || got.Count != 8 {
		t.Errorf("FromFile(yaml) = %+v", got)
	}

	got, err = FromFile[sample](context.Background(), jsonPath)
	if err != nil {
		t.Fatalf("FromFile(json) error = %v", err)
	}
	if got.Name != "bread" {
		t.Errorf("FromFile(json) = %+v", got)
	}

	if _, err := FromFile[sample](context.Background(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := FromFile[sample](context.Background(), filepath.Join(dir, "notes.txt")); err == nil {
		t.Error("expected error for text file")
	}
}

func TestFromFile_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != HttpReaderUserAgent {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Path == "/missing.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("name: muffins\ncount: 12\n"))
	}))
	defer srv.Close()

	got, err := FromFile[sample](context.Background(), srv.URL+"/muffins.yaml")
	if err != nil {
		t.Fatalf("FromFile(url) error = %v", err)
	}
	if got.Name != "muffins" || got.Count != 12 {
		t.Errorf("FromFile(url) = %+v", got)
	}

	if _, err := FromFile[sample](context.Background(), srv.URL+"/missing.yaml"); err == nil {
		t.Error("expected error for 404")
	}
}
