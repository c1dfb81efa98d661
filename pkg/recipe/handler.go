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

package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NVIDIA/ingredi/pkg/convert"
	"github.com/NVIDIA/ingredi/pkg/defaults"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/serializer"
	"github.com/NVIDIA/ingredi/pkg/server"
)

// ScaleRequest is the body of a recipe scaling request. It names a built-in
// recipe or carries one inline.
type ScaleRequest struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Recipe *Recipe `json:"recipe,omitempty" yaml:"recipe,omitempty"`

	Request `json:",inline" yaml:",inline"`
}

// CatalogResult lists the built-in recipes.
type CatalogResult struct {
	Recipes []string `json:"recipes" yaml:"recipes"`
}

// ParseScaleRequestFromValues reads name, servings, multiplier, type,
// format and the repeatable flag query parameters.
func ParseScaleRequestFromValues(values url.Values) (*ScaleRequest, error) {
	req := &ScaleRequest{Name: values.Get("name")}

	if s := values.Get("servings"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid servings %q: %w", s, err)
		}
		req.Servings = n
	}
	if s := values.Get("multiplier"); s != "" {
		m, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid multiplier %q: %w", s, err)
		}
		req.Multiplier = &m
	}

	opts, err := convert.ParseOptionsFromValues(values)
	if err != nil {
		return nil, err
	}
	req.Flags = opts.Flags
	req.Type = opts.Type
	req.Format = opts.Format
	return req, nil
}

// resolve returns the recipe the request refers to.
func (q *ScaleRequest) resolve(ctx context.Context) (*Recipe, error) {
	switch {
	case q.Recipe != nil && q.Name != "":
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "name and recipe are mutually exclusive")
	case q.Recipe != nil:
		return q.Recipe, nil
	case q.Name != "":
		return Lookup(ctx, q.Name)
	default:
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "name or recipe is required")
	}
}

// HandleScale scales a built-in recipe named by GET query parameters, or
// the recipe or name in a JSON or YAML POST body.
func (s *Scaler) HandleScale(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	var req *ScaleRequest
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = ParseScaleRequestFromValues(r.URL.Query())
	case http.MethodPost:
		defer r.Body.Close()
		req = &ScaleRequest{}
		err = serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), req)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		server.WriteRequestError(w, r, err, "Invalid recipe request")
		return
	}

	rec, err := req.resolve(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to load recipe", nil)
		return
	}

	slog.Debug("scale recipe",
		"name", rec.Name,
		"servings", req.Servings,
		"flags", req.Flags,
	)

	result, err := s.Scale(ctx, rec, req.Request)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to scale recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleCatalog lists the built-in recipe names.
func (s *Scaler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET"},
			})
		return
	}

	names, err := Names(r.Context())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to load recipe catalog", nil)
		return
	}

	// Built-in recipes only change with the binary.
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, CatalogResult{Recipes: names})
}
