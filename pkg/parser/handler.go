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

package parser

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/NVIDIA/ingredi/pkg/defaults"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/serializer"
	"github.com/NVIDIA/ingredi/pkg/server"
)

// Request is the POST body of the parse endpoint.
type Request struct {
	Text string `json:"text" yaml:"text"`
}

// Result is the ParseResult document.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Amounts []Amount `json:"amounts" yaml:"amounts"`
	Units   []string `json:"units" yaml:"units"`
}

// NewResult parses text into a Result. Text without amounts yields an
// empty Result rather than an error.
func NewResult(text, version string) *Result {
	amounts, err := Parse(text)
	if err != nil {
		amounts = []Amount{}
	}
	res := &Result{Amounts: amounts, Units: Units(amounts)}
	if res.Units == nil {
		res.Units = []string{}
	}
	res.Init(header.KindParseResult, header.APIVersion, version)
	return res
}

// Text renders one matched amount per line.
func (r *Result) Text() string {
	lines := make([]string, 0, len(r.Amounts))
	for _, a := range r.Amounts {
		lines = append(lines, a.Amount+" "+a.Unit)
	}
	return strings.Join(lines, "\n")
}

// Handler serves parse requests.
type Handler struct {
	// Version is stamped into response metadata.
	Version string
}

// NewHandler returns a Handler reporting version.
func NewHandler(version string) *Handler {
	return &Handler{Version: version}
}

// HandleParse finds the amounts in the "text" query parameter on GET or the
// text of a JSON or YAML body on POST.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	var req Request

	switch r.Method {
	case http.MethodGet:
		req.Text = r.URL.Query().Get("text")
	case http.MethodPost:
		defer r.Body.Close()
		if err := serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), &req); err != nil {
			server.WriteRequestError(w, r, err, "Invalid parse request")
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err := ValidateText(req.Text); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid parse request", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, NewResult(req.Text, h.Version))
}

// ValidateText rejects empty text and text longer than defaults.MaxTextLength.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "text is required")
	}
	if len(text) > defaults.MaxTextLength {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "text too long",
			map[string]any{"length": len(text), "max": defaults.MaxTextLength})
	}
	return nil
}

// IsNoAmounts reports whether err is ErrNoAmounts.
func IsNoAmounts(err error) bool {
	return stderrors.Is(err, ErrNoAmounts)
}
