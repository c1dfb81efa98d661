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

package rescale

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/ingredi/pkg/convert"
	"github.com/NVIDIA/ingredi/pkg/defaults"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/parser"
	"github.com/NVIDIA/ingredi/pkg/serializer"
	"github.com/NVIDIA/ingredi/pkg/server"
)

// Item is one text of a bulk rescale request.
type Item struct {
	Text string `json:"text" yaml:"text"`

	// Multiplier overrides the request multiplier for this item.
	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`

	// Flags are added to the request flags for this item.
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Request is a rescale request. Either Text or Items is set.
type Request struct {
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`

	convert.Options `json:",inline" yaml:",inline"`

	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`

	// maxItems caps len(Items); defaults.MaxBulkRequests when zero.
	maxItems int
}

// Response is the RescaleResult document. Result is set for single
// requests and Items, in request order, for bulk ones.
type Response struct {
	header.Header `json:",inline" yaml:",inline"`

	Result *Result   `json:"result,omitempty" yaml:"result,omitempty"`
	Items  []*Result `json:"items,omitempty" yaml:"items,omitempty"`
}

// Text returns the rescaled text of a single request, or of each item
// separated by blank lines.
func (r *Response) Text() string {
	if r.Result != nil {
		return r.Result.Rescaled
	}
	texts := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		texts = append(texts, it.Rescaled)
	}
	return strings.Join(texts, "\n\n")
}

// ParseRequestFromValues builds a single-text Request from the text,
// multiplier, to, type, format and flag query parameters.
func ParseRequestFromValues(values url.Values) (*Request, error) {
	opts, err := convert.ParseOptionsFromValues(values)
	if err != nil {
		return nil, err
	}
	req := &Request{Text: values.Get("text"), Options: *opts}

	if s := values.Get("multiplier"); s != "" {
		m, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid multiplier %q: %w", s, err)
		}
		req.Multiplier = &m
	}
	return req, nil
}

// WithMaxItems sets the bulk item limit checked by Validate. Zero or less
// restores defaults.MaxBulkRequests.
func (r *Request) WithMaxItems(n int) *Request {
	r.maxItems = n
	return r
}

// Validate checks the request shape. Multipliers and texts are checked
// again as each item is rescaled.
func (r *Request) Validate() error {
	limit := r.maxItems
	if limit <= 0 {
		limit = defaults.MaxBulkRequests
	}
	if len(r.Items) > limit {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "too many items",
			map[string]any{"count": len(r.Items), "max": limit})
	}
	if len(r.Items) > 0 && r.Text != "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "text and items are mutually exclusive")
	}
	if len(r.Items) == 0 {
		if r.Multiplier == nil {
			return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "multiplier is required")
		}
		return parser.ValidateText(r.Text)
	}
	for i, it := range r.Items {
		if it.Multiplier == nil && r.Multiplier == nil {
			return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "multiplier is required",
				map[string]any{"item": i})
		}
		if err := parser.ValidateText(it.Text); err != nil {
			return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "invalid item", err,
				map[string]any{"item": i})
		}
	}
	return r.Options.Validate()
}

// Do rescales the request. Bulk items run concurrently, at most
// defaults.ScaleConcurrency at a time, and results keep request order.
func (r *Request) Do(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if len(r.Items) == 0 {
		res, err := Apply(r.Text, *r.Multiplier, &r.Options)
		if err != nil {
			return nil, err
		}
		rescaleItemsPerRequest.Observe(1)
		return &Response{Result: res}, nil
	}

	results := make([]*Result, len(r.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.ScaleConcurrency)

	for i, it := range r.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "rescale canceled", err)
			}
			m := r.Multiplier
			if it.Multiplier != nil {
				m = it.Multiplier
			}
			res, err := Apply(it.Text, *m, r.Options.WithFlags(it.Flags...))
			if err != nil {
				return cnserrors.WrapWithContext(cnserrors.CodeOf(err), "failed to rescale item", err,
					map[string]any{"item": i})
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rescaleItemsPerRequest.Observe(float64(len(results)))
	return &Response{Items: results}, nil
}

// Handler serves rescale requests.
type Handler struct {
	// Version is stamped into response metadata.
	Version string

	// MaxItems caps the items of one bulk request; zero means
	// defaults.MaxBulkRequests.
	MaxItems int
}

// NewHandler returns a Handler reporting version.
func NewHandler(version string) *Handler {
	return &Handler{Version: version}
}

// HandleRescale rescales the text of a GET query or a JSON or YAML POST
// body. POST bodies may carry up to MaxItems items instead.
func (h *Handler) HandleRescale(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RescaleHandlerTimeout)
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
		server.WriteRequestError(w, r, err, "Invalid rescale request")
		return
	}

	slog.Debug("rescale request",
		"items", len(req.Items),
		"flags", req.Flags,
		"format", req.Format,
	)

	resp, err := req.WithMaxItems(h.MaxItems).Do(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to rescale", nil)
		return
	}

	resp.Init(header.KindRescaleResult, header.APIVersion, h.Version)
	serializer.RespondJSON(w, http.StatusOK, resp)
}
