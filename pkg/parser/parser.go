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
	"regexp"
	"strings"

	"github.com/NVIDIA/ingredi/pkg/amount"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
)

// ErrNoAmounts is returned by Parse when the text holds no amount followed
// by a unit.
var ErrNoAmounts = cnserrors.New(cnserrors.ErrCodeNotFound, "no amounts found")

// Bound is one side of a range.
type Bound struct {
	// Amount is the number text with fraction glyphs rewritten ("1 1/2").
	Amount string `json:"amount" yaml:"amount"`

	// Source is the number exactly as written ("1½").
	Source string `json:"source" yaml:"source"`
}

// Range holds both sides of a ranged amount such as "1-2 c".
type Range struct {
	Left      Bound  `json:"left" yaml:"left"`
	Right     Bound  `json:"right" yaml:"right"`
	Separator string `json:"separator" yaml:"separator"`
}

// Amount is a quantity and unit found in free text.
type Amount struct {
	// Amount is the number text in its original notation, glyphs rewritten.
	// For ranges it is "left<separator>right".
	Amount string `json:"amount" yaml:"amount"`

	// Unit is the unit as written, including a trailing period if present.
	Unit string `json:"unit" yaml:"unit"`

	// Source is the matched text, byte-for-byte.
	Source string `json:"source" yaml:"source"`

	// Offset is the byte offset of Source within the parsed text.
	Offset int `json:"offset" yaml:"offset"`

	// Range is set only for ranged amounts.
	Range *Range `json:"range,omitempty" yaml:"range,omitempty"`
}

// IsRange reports whether a is a ranged amount.
func (a Amount) IsRange() bool {
	return a.Range != nil
}

// End returns the byte offset just past Source.
func (a Amount) End() int {
	return a.Offset + len(a.Source)
}

// Value returns the numeric value of a non-ranged amount.
func (a Amount) Value() (float64, error) {
	if a.Range != nil {
		return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"ranged amount has no single value", map[string]any{"source": a.Source})
	}
	return amount.Parse(a.Amount)
}

const (
	number = `(?:\d+ )?\d+/\d+` +
		`|(?:\d+ ?)?[` + amount.GlyphChars + `]` +
		`|\d*\.\d+` +
		`|\d+`
	separator = ` - | to |-`
	unit      = `(?i:fl\.? ?oz|fluid (?:ounces?|oz))|[a-zA-Z]+`
)

// Submatch indexes of grammar.
const (
	groupLeft = 1 + iota
	groupSeparator
	groupRight
	groupSingle
	groupUnit
)

// grammar matches a range or a single number, an optional space or tab and
// a unit with an optional trailing period. Alternatives are leftmost-first,
// so fractions win over the integers they start with.
var grammar = regexp.MustCompile(
	`(?:(` + number + `)(` + separator + `)(` + number + `)|(` + number + `))` +
		`[ \t]?((?:` + unit + `)\.?)`)

// Parse returns every amount found in text, in order of appearance.
// It returns ErrNoAmounts when nothing matches.
func Parse(text string) ([]Amount, error) {
	matches := grammar.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, ErrNoAmounts
	}

	out := make([]Amount, 0, len(matches))
	for _, m := range matches {
		out = append(out, build(text, m))
	}
	return out, nil
}

// ParseFirst returns the first amount found in text.
func ParseFirst(text string) (Amount, error) {
	loc := grammar.FindStringSubmatchIndex(text)
	if loc == nil {
		return Amount{}, ErrNoAmounts
	}
	return build(text, loc), nil
}

func build(text string, m []int) Amount {
	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}

	a := Amount{
		Unit:   group(groupUnit),
		Source: text[m[0]:m[1]],
		Offset: m[0],
	}

	if m[2*groupLeft] < 0 {
		a.Amount = amount.ReplaceGlyphs(group(groupSingle))
		return a
	}

	r := &Range{
		Left:      newBound(group(groupLeft)),
		Right:     newBound(group(groupRight)),
		Separator: group(groupSeparator),
	}
	a.Amount = r.Left.Amount + r.Separator + r.Right.Amount
	a.Range = r
	return a
}

func newBound(src string) Bound {
	return Bound{Amount: amount.ReplaceGlyphs(src), Source: src}
}

// Units returns the distinct units in amounts, in order of first appearance.
func Units(amounts []Amount) []string {
	seen := make(map[string]bool, len(amounts))
	var out []string
	for _, a := range amounts {
		u := strings.TrimSuffix(a.Unit, ".")
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}
