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

package convert

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/ingredi/pkg/defaults"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/serializer"
	"github.com/NVIDIA/ingredi/pkg/server"
)

// Handler serves conversion requests.
type Handler struct {
	// Version is stamped into response metadata.
	Version string
}

// NewHandler returns a Handler reporting version.
func NewHandler(version string) *Handler {
	return &Handler{Version: version}
}

// HandleConvert converts one amount. GET reads query parameters, POST a
// JSON or YAML Request body. Diagnostics are part of a 200 response; only
// invalid input is an error.
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ConvertHandlerTimeout)
	defer cancel()

	var req *Request
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = ParseRequestFromValues(r.URL.Query())
	case http.MethodPost:
		defer r.Body.Close()
		req = &Request{}
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
		server.WriteRequestError(w, r, err, "Invalid conversion request")
		return
	}

	res, err := req.Do()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to convert amount", nil)
		return
	}
	if ctx.Err() != nil {
		server.WriteError(w, r, http.StatusGatewayTimeout, cnserrors.ErrCodeTimeout,
			"Conversion timed out", true, nil)
		return
	}

	slog.Debug("converted",
		"amount", req.Amount,
		"unit", req.Unit,
		"to", res.Unit,
		"table", res.Table,
		"diagnostics", len(res.Diagnostics),
	)

	resp := &Response{Request: req, Result: res}
	resp.Init(header.KindConversionResult, header.APIVersion, h.Version)
	serializer.RespondJSON(w, http.StatusOK, resp)
}
