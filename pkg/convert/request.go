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
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/NVIDIA/ingredi/pkg/amount"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
)

// Request is a conversion request as accepted by the HTTP API.
type Request struct {
	// Amount is the amount as written, e.g. "1 1/2" or "½".
	Amount string `json:"amount,omitempty" yaml:"amount,omitempty"`

	// Value is a numeric amount; it takes precedence over Amount.
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`

	// Unit is the source unit in any recognized spelling.
	Unit string `json:"unit" yaml:"unit"`

	Options `json:",inline" yaml:",inline"`
}

// Response is the ConversionResult document.
type Response struct {
	header.Header `json:",inline" yaml:",inline"`

	Request *Request `json:"request" yaml:"request"`
	Result  *Result  `json:"result" yaml:"result"`
}

// Text returns the converted amount, e.g. "2 c".
func (r *Response) Text() string {
	if r.Result == nil {
		return ""
	}
	return r.Result.String
}

// Resolve returns the numeric amount of the request.
func (r *Request) Resolve() (float64, error) {
	if r.Value != nil {
		if math.IsNaN(*r.Value) || math.IsInf(*r.Value, 0) {
			return 0, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "value must be a finite number")
		}
		return *r.Value, nil
	}
	if strings.TrimSpace(r.Amount) == "" {
		return 0, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "amount or value is required")
	}
	return amount.Parse(r.Amount)
}

// Do resolves the amount and converts it.
func (r *Request) Do() (*Result, error) {
	v, err := r.Resolve()
	if err != nil {
		return nil, err
	}
	return Convert(v, r.Unit, &r.Options)
}

// ParseRequestFromValues builds a Request from URL query values: amount or
// value, unit, and the options read by ParseOptionsFromValues.
func ParseRequestFromValues(values url.Values) (*Request, error) {
	opts, err := ParseOptionsFromValues(values)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Amount:  values.Get("amount"),
		Unit:    values.Get("unit"),
		Options: *opts,
	}

	if s := values.Get("value"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		req.Value = &v
	}

	if req.Unit == "" {
		return nil, fmt.Errorf("unit is required")
	}
	return req, nil
}

// ParseOptionsFromValues reads to, type, format and the repeatable flag
// query parameters.
func ParseOptionsFromValues(values url.Values) (*Options, error) {
	opts := &Options{
		To:    values.Get("to"),
		Flags: values["flag"],
	}

	typ, err := ParseFamily(values.Get("type"))
	if err != nil {
		return nil, err
	}
	opts.Type = typ

	if s := values.Get("format"); s != "" {
		f, err := amount.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}
	return opts, nil
}
