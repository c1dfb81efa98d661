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
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/NVIDIA/ingredi/pkg/amount"
	"github.com/NVIDIA/ingredi/pkg/convert"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/parser"
	"github.com/NVIDIA/ingredi/pkg/units"
)

// Replacement records how one matched amount was rewritten.
type Replacement struct {
	// Offset is the byte offset of Source in the input text.
	Offset int `json:"offset" yaml:"offset"`

	// Source is the matched text, e.g. "1-2 c".
	Source string `json:"source" yaml:"source"`

	// Text is what Source was replaced with, e.g. "2-4 c".
	Text string `json:"text" yaml:"text"`

	Diagnostics []convert.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Result is the outcome of rescaling one text.
type Result struct {
	// Input is the text as given.
	Input string `json:"input" yaml:"input"`

	// Rescaled is Input with every amount multiplied and converted.
	Rescaled string `json:"rescaled" yaml:"rescaled"`

	Multiplier   float64              `json:"multiplier" yaml:"multiplier"`
	Replacements []Replacement        `json:"replacements" yaml:"replacements"`
	Diagnostics  []convert.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Text returns the rescaled text.
func (r *Result) Text() string {
	return r.Rescaled
}

// Rescale multiplies every amount in text by multiplier, converts each to a
// legible unit and returns the rewritten text. Text without amounts is
// returned unchanged.
func Rescale(text string, multiplier float64, opts *convert.Options) (string, error) {
	res, err := Apply(text, multiplier, opts)
	if err != nil {
		return "", err
	}
	return res.Rescaled, nil
}

// Apply is Rescale with a record of every replacement made.
func Apply(text string, multiplier float64, opts *convert.Options) (*Result, error) {
	return apply(text, multiplier, opts, nil)
}

// ApplyCanonical is Apply restricted to amounts in canonical units, so that
// counts and times such as "4-5 times" or "20 minutes" are left alone.
func ApplyCanonical(text string, multiplier float64, opts *convert.Options) (*Result, error) {
	return apply(text, multiplier, opts, func(a parser.Amount) bool {
		return units.IsCanonical(units.Normalize(a.Unit))
	})
}

func apply(text string, multiplier float64, opts *convert.Options, keep func(parser.Amount) bool) (*Result, error) {
	if err := ValidateMultiplier(multiplier); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Input:        text,
		Rescaled:     text,
		Multiplier:   multiplier,
		Replacements: []Replacement{},
	}

	amounts, err := parser.Parse(text)
	if err != nil {
		if parser.IsNoAmounts(err) {
			return res, nil
		}
		return nil, err
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	n := 0
	for _, a := range amounts {
		if keep != nil && !keep(a) {
			continue
		}
		rep, err := Amount(a, multiplier, opts)
		if err != nil {
			if !cnserrors.HasCode(err, cnserrors.ErrCodeMalformedNumber) {
				return nil, err
			}
			// A match the grammar accepts but arithmetic cannot ("1/0")
			// stays as written.
			rep = malformed(a, err)
		} else {
			n++
		}
		b.WriteString(text[last:a.Offset])
		b.WriteString(rep.Text)
		last = a.End()

		res.Replacements = append(res.Replacements, *rep)
		res.Diagnostics = append(res.Diagnostics, rep.Diagnostics...)
	}
	b.WriteString(text[last:])
	res.Rescaled = b.String()

	rescaledAmountsTotal.Add(float64(n))
	return res, nil
}

// malformed records an amount left unchanged because its number cannot be
// evaluated.
func malformed(a parser.Amount, err error) *Replacement {
	rep := &Replacement{
		Offset: a.Offset,
		Source: a.Source,
		Text:   a.Source,
		Diagnostics: []convert.Diagnostic{{
			Code:    cnserrors.ErrCodeMalformedNumber,
			Message: err.Error(),
			Unit:    a.Unit,
		}},
	}
	logDiagnostics(a, rep.Diagnostics)
	return rep
}

// ValidateMultiplier rejects multipliers that are not finite and positive.
func ValidateMultiplier(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"multiplier must be a finite number greater than zero",
			map[string]any{"multiplier": fmt.Sprint(m)})
	}
	return nil
}

// Amount rescales a single parsed amount. Both sides of a range are scaled
// and converted on their own; when they land on the same unit it is written
// once after the right side ("1/2-1 c"), otherwise each side keeps its unit
// ("1 tsp - 1 tbsp").
func Amount(a parser.Amount, multiplier float64, opts *convert.Options) (*Replacement, error) {
	if err := ValidateMultiplier(multiplier); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &convert.Options{}
	}
	o := *opts
	if o.Format == amount.FormatNone {
		o.Format = defaultFormat(a.Amount)
	}

	rep := &Replacement{Offset: a.Offset, Source: a.Source}

	if !a.IsRange() {
		v, err := a.Value()
		if err != nil {
			return nil, err
		}
		res, err := convert.Convert(v*multiplier, a.Unit, &o)
		if err != nil {
			return nil, err
		}
		rep.Text = res.Rendered + " " + unitText(res.Unit, a.Unit)
		rep.Diagnostics = res.Diagnostics
		logDiagnostics(a, rep.Diagnostics)
		return rep, nil
	}

	left, err := scaleBound(a.Range.Left, a.Unit, multiplier, &o)
	if err != nil {
		return nil, err
	}
	right, err := scaleBound(a.Range.Right, a.Unit, multiplier, &o)
	if err != nil {
		return nil, err
	}

	sep := a.Range.Separator
	rightText := right.Rendered + " " + unitText(right.Unit, a.Unit)
	if left.Unit == right.Unit {
		rep.Text = left.Rendered + sep + rightText
	} else {
		// A bare "-" would glue two units together.
		if sep == "-" {
			sep = " - "
		}
		rep.Text = left.Rendered + " " + unitText(left.Unit, a.Unit) + sep + rightText
	}
	rep.Diagnostics = mergeDiagnostics(left.Diagnostics, right.Diagnostics)
	logDiagnostics(a, rep.Diagnostics)
	return rep, nil
}

func scaleBound(b parser.Bound, unit string, multiplier float64, opts *convert.Options) (*convert.Result, error) {
	v, err := amount.Parse(b.Amount)
	if err != nil {
		return nil, err
	}
	return convert.Convert(v*multiplier, unit, opts)
}

// defaultFormat keeps decimal notation for amounts written as decimals and
// prefers fractions for everything else.
func defaultFormat(written string) amount.Format {
	if amount.IsDecimal(written) {
		return amount.FormatDecimal
	}
	return amount.FormatAuto
}

// unitText renders a result unit. Passthrough units keep the spelling they
// were written with; canonical ones keep a trailing period if it had one.
func unitText(u units.Unit, raw string) string {
	if !units.IsCanonical(u) {
		return raw
	}
	if strings.HasSuffix(raw, ".") {
		return u.String() + "."
	}
	return u.String()
}

func mergeDiagnostics(a, b []convert.Diagnostic) []convert.Diagnostic {
	out := append([]convert.Diagnostic(nil), a...)
	for _, d := range b {
		dup := false
		for _, e := range out {
			if e == d {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, d)
		}
	}
	return out
}

func logDiagnostics(a parser.Amount, diags []convert.Diagnostic) {
	for _, d := range diags {
		slog.Debug("amount left unconverted",
			"source", a.Source,
			"offset", a.Offset,
			"code", d.Code,
			"message", d.Message,
		)
	}
}
