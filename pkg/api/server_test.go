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

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/NVIDIA/ingredi/pkg/server"
)

// Serve blocks until shutdown, so these tests drive the same routes through
// server.New's handler instead.

func TestConstants(t *testing.T) {
	if name != "ingredid" {
		t.Errorf("name = %q, want %q", name, "ingredid")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func testConfig() *server.Config {
	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = "test"
	return cfg
}

func TestRoutes(t *testing.T) {
	routes := Routes(testConfig())

	want := []string{"/v1/convert", "/v1/normalize", "/v1/parse", "/v1/recipe", "/v1/recipes", "/v1/rescale"}
	got := make([]string, 0, len(routes))
	for path, h := range routes {
		if h == nil {
			t.Errorf("handler for %s is nil", path)
		}
		got = append(got, path)
	}
	sort.Strings(got)

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("routes = %v, want %v", got, want)
	}
}

func TestEndpoints(t *testing.T) {
	cfg := testConfig()
	cfg.Handlers = Routes(cfg)
	h := server.New(server.WithConfig(cfg)).Handler()

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		wantBody string
	}{
		{"normalize", http.MethodGet, "/v1/normalize?unit=tablespoons", "", http.StatusOK, `"unit":"tbsp"`},
		{"parse", http.MethodGet, "/v1/parse?text=" + url.QueryEscape("1½ c milk"), "", http.StatusOK, `"amount":"1 1/2"`},
		{"convert", http.MethodGet, "/v1/convert?amount=3&unit=tsp&to=tbsp", "", http.StatusOK, `"string":"1 tbsp"`},
		{"rescale", http.MethodPost, "/v1/rescale", `{"text":"1-2c","multiplier":0.5}`, http.StatusOK, `"rescaled":"1/2-1 c"`},
		{"recipe", http.MethodGet, "/v1/recipe?name=biscuits&servings=16", "", http.StatusOK, `"kind":"RecipeResult"`},
		{"recipes", http.MethodGet, "/v1/recipes", "", http.StatusOK, `"biscuits"`},
		{"health", http.MethodGet, "/health", "", http.StatusOK, ""},
		{"unknown", http.MethodGet, "/v1/nothing", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body: %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body missing %s: %s", tt.wantBody, w.Body.String())
			}
			if tt.wantCode == http.StatusOK && w.Header().Get("X-Request-Id") == "" {
				t.Error("expected X-Request-Id header")
			}
		})
	}
}

func TestEndpoints_ErrorBody(t *testing.T) {
	h := server.New(server.WithHandler(Routes(testConfig()))).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/convert?amount=1/0&unit=c", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var resp server.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Code != "MALFORMED_NUMBER" {
		t.Errorf("code = %q, want MALFORMED_NUMBER", resp.Code)
	}
	if resp.RequestID == "" {
		t.Error("expected request id in error body")
	}
}

func TestEndpoints_Limits(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBulkRequests = 1
	cfg.MaxBodyBytes = 128
	cfg.Handlers = Routes(cfg)
	h := server.New(server.WithConfig(cfg)).Handler()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"one item", `{"multiplier":2,"items":[{"text":"1 c"}]}`, http.StatusOK},
		{"over item limit", `{"multiplier":2,"items":[{"text":"1 c"},{"text":"2 c"}]}`, http.StatusBadRequest},
		{"over body limit", `{"multiplier":2,"text":"` + strings.Repeat("1 c flour ", 20) + `"}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/rescale", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestChecks(t *testing.T) {
	checks := Checks()
	for _, n := range []string{"units", "recipes"} {
		check, ok := checks[n]
		if !ok {
			t.Fatalf("missing check %q", n)
		}
		if err := check(context.Background()); err != nil {
			t.Errorf("check %q: %v", n, err)
		}
	}
}
