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

package units

import (
	"net/http"
	"strings"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/serializer"
	"github.com/NVIDIA/ingredi/pkg/server"
)

// maxUnitsPerRequest caps the number of spellings normalized per request.
const maxUnitsPerRequest = 100

// Normalized is one normalized spelling.
type Normalized struct {
	Input     string `json:"input" yaml:"input"`
	Unit      Unit   `json:"unit" yaml:"unit"`
	Canonical bool   `json:"canonical" yaml:"canonical"`
}

// NormalizeRequest is the POST body of the normalize endpoint.
type NormalizeRequest struct {
	Units []string `json:"units" yaml:"units"`
}

// NormalizeResult is the NormalizeResult document.
type NormalizeResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Units []Normalized `json:"units" yaml:"units"`
}

// NormalizeAll normalizes every spelling in raw.
func NormalizeAll(raw []string) []Normalized {
	out := make([]Normalized, 0, len(raw))
	for _, r := range raw {
		u := Normalize(r)
		out = append(out, Normalized{Input: r, Unit: u, Canonical: IsCanonical(u)})
	}
	return out
}

// Text renders one normalized unit per line.
func (r *NormalizeResult) Text() string {
	lines := make([]string, 0, len(r.Units))
	for _, n := range r.Units {
		lines = append(lines, n.Unit.String())
	}
	return strings.Join(lines, "\n")
}

// Handler serves unit normalization requests.
type Handler struct {
	// Version is stamped into response metadata.
	Version string
}

// NewHandler returns a Handler reporting version.
func NewHandler(version string) *Handler {
	return &Handler{Version: version}
}

// HandleNormalize normalizes the repeated "unit" query parameter on GET or
// the units list of a JSON or YAML body on POST.
func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var raw []string

	switch r.Method {
	case http.MethodGet:
		raw = r.URL.Query()["unit"]
	case http.MethodPost:
		defer r.Body.Close()
		var req NormalizeRequest
		if err := serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), &req); err != nil {
			server.WriteRequestError(w, r, err, "Invalid normalize request")
			return
		}
		raw = req.Units
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if len(raw) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"At least one unit is required", false, nil)
		return
	}
	if len(raw) > maxUnitsPerRequest {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Too many units", false, map[string]any{
				"count": len(raw),
				"max":   maxUnitsPerRequest,
			})
		return
	}

	res := &NormalizeResult{Units: NormalizeAll(raw)}
	res.Init(header.KindNormalizeResult, header.APIVersion, h.Version)
	serializer.RespondJSON(w, http.StatusOK, res)
}
