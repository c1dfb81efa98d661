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

	"github.com/NVIDIA/ingredi/pkg/amount"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/units"
)

// Diagnostic is a non-fatal condition met during a conversion. The amount
// it refers to is left unconverted.
type Diagnostic struct {
	Code    cnserrors.ErrorCode `json:"code" yaml:"code"`
	Message string              `json:"message" yaml:"message"`
	Unit    string              `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Result is the outcome of a conversion.
type Result struct {
	// Amount is the converted value.
	Amount float64 `json:"amount" yaml:"amount"`

	// Rendered is Amount formatted per Options.Format.
	Rendered string `json:"rendered" yaml:"rendered"`

	// Unit is the canonical unit, or the cleaned passthrough unit.
	Unit units.Unit `json:"unit" yaml:"unit"`

	// String is "Rendered Unit".
	String string `json:"string" yaml:"string"`

	// Table names the conversion table used, empty when nothing converted.
	Table string `json:"table,omitempty" yaml:"table,omitempty"`

	// Diagnostics lists why the amount was left unconverted, if it was.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Converted reports whether the conversion used a table.
func (r *Result) Converted() bool {
	return r.Table != ""
}

// Convert converts amt, measured in unit, to the unit chosen by opts.
//
// An "oz" with no Type and no butter, flour or liquor flag is left as is with
// an AMBIGUOUS_UNIT diagnostic. Units the selected table does not know are
// left as is too; canonical ones get an INCOMPATIBLE_UNITS diagnostic and
// passthrough words such as "onions" get UNKNOWN_UNIT. A non-finite amount or
// invalid options are the only errors.
func Convert(amt float64, unit string, opts *Options) (*Result, error) {
	res, err := convert(amt, unit, opts)
	if err != nil {
		return nil, err
	}
	observe(res)
	return res, nil
}

func convert(amt float64, unit string, opts *Options) (*Result, error) {
	if math.IsNaN(amt) || math.IsInf(amt, 0) {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"amount must be a finite number", map[string]any{"amount": fmt.Sprint(amt)})
	}
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	from := units.Normalize(unit)
	var to units.Unit
	if opts.To != "" {
		to = units.Normalize(opts.To)
	}
	h := newHints(opts.Flags)

	var diags []Diagnostic
	if from == units.Ounce && opts.Type == "" && !h.resolvesOunce() {
		diags = append(diags, Diagnostic{
			Code:    cnserrors.ErrCodeAmbiguousUnit,
			Message: "ambiguous oz: volume or weight unclear",
			Unit:    from.String(),
		})
		return newResult(amt, from, "", opts.Format, diags), nil
	}

	t := selectTable(from, to, opts.Type, h)
	if !t.Has(from) {
		switch {
		case units.IsCanonical(from):
			diags = append(diags, incompatible(from, t))
		case from != "":
			diags = append(diags, Diagnostic{
				Code:    cnserrors.ErrCodeUnknownUnit,
				Message: fmt.Sprintf("unit %q is not a measurement unit", from),
				Unit:    from.String(),
			})
		}
		return newResult(amt, from, "", opts.Format, diags), nil
	}

	if to != "" && !t.Has(to) {
		diags = append(diags, incompatible(to, t))
		to = ""
	}
	if to == "" {
		to = autoUnit(t, from, amt, h)
		if !t.Has(to) {
			diags = append(diags, incompatible(to, t))
			return newResult(amt, from, "", opts.Format, diags), nil
		}
	}

	converted := amt * t.Factors[to] / t.Factors[from]
	return newResult(converted, to, t.Name, opts.Format, diags), nil
}

func incompatible(u units.Unit, t *Table) Diagnostic {
	return Diagnostic{
		Code:    cnserrors.ErrCodeIncompatibleUnits,
		Message: fmt.Sprintf("unit %q is not in the %s table", u, t.Name),
		Unit:    u.String(),
	}
}

func newResult(amt float64, u units.Unit, table string, f amount.Format, diags []Diagnostic) *Result {
	rendered := amount.Render(amt, f)
	s := rendered
	if u != "" {
		s += " " + u.String()
	}
	return &Result{
		Amount:      amt,
		Rendered:    rendered,
		Unit:        u,
		String:      s,
		Table:       table,
		Diagnostics: diags,
	}
}
