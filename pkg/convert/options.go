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
	"slices"
	"strings"
	"unicode"

	"github.com/NVIDIA/ingredi/pkg/amount"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
)

// Family is the measurement family a table converts within.
type Family string

const (
	// FamilyVolume tables are referenced to cups.
	FamilyVolume Family = "volume"
	// FamilyWeight tables are referenced to ounces by weight.
	FamilyWeight Family = "weight"
)

// String returns the string representation of the Family.
func (f Family) String() string {
	return string(f)
}

// ParseFamily parses an Options.Type value. The empty string is allowed
// and leaves the family to be inferred.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "", FamilyVolume, FamilyWeight:
		return f, nil
	default:
		return "", fmt.Errorf("invalid type %q, supported values: %v", s, SupportedFamilies())
	}
}

// SupportedFamilies returns the names of the conversion tables.
func SupportedFamilies() []string {
	return []string{string(FamilyVolume), string(FamilyWeight)}
}

// Ingredient hints recognized in Options.Flags.
const (
	FlagButter = "butter"
	FlagFlour  = "flour"
	FlagRye    = "rye"
	FlagLiquor = "liquor"
)

// Options control a single conversion.
type Options struct {
	// To is the target unit in any recognized spelling. Empty selects the
	// most legible unit for the amount.
	To string `json:"to,omitempty" yaml:"to,omitempty"`

	// Type forces the family "oz" is read in.
	Type Family `json:"type,omitempty" yaml:"type,omitempty"`

	// Flags are free-text ingredient hints such as "butter" or "rye flour".
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`

	// Format selects fraction, decimal or auto rendering.
	Format amount.Format `json:"format,omitempty" yaml:"format,omitempty"`
}

// Validate checks the option values.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if _, err := ParseFamily(string(o.Type)); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid conversion options", err)
	}
	if !o.Format.IsValid() {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "invalid conversion options",
			map[string]any{"format": o.Format, "supported": amount.SupportedFormats()})
	}
	return nil
}

// WithFlags returns a copy of o with extra flags appended.
func (o *Options) WithFlags(flags ...string) *Options {
	out := &Options{}
	if o != nil {
		*out = *o
	}
	out.Flags = append(append([]string(nil), out.Flags...), flags...)
	return out
}

// hints records which ingredient flags are present. Matching is by
// case-insensitive substring, so "Rye Flour" sets both rye and flour.
type hints struct {
	butter, flour, rye, liquor bool
}

func newHints(flags []string) hints {
	var h hints
	for _, f := range flags {
		f = strings.ToLower(f)
		h.butter = h.butter || strings.Contains(f, FlagButter)
		h.flour = h.flour || strings.Contains(f, FlagFlour)
		h.rye = h.rye || strings.Contains(f, FlagRye)
		h.liquor = h.liquor || strings.Contains(f, FlagLiquor)
	}
	return h
}

// resolvesOunce reports whether the hints say which family "oz" is in.
func (h hints) resolvesOunce() bool {
	return h.liquor || h.flour || h.butter
}

// liquors are words that mark an ingredient as a spirit measured by volume.
var liquors = []string{
	"liquor", "liqueur", "rum", "whiskey", "whisky", "bourbon",
	"vodka", "gin", "tequila", "brandy", "cognac", "vermouth",
}

// InferFlags returns the ingredient flags named by the words of text, e.g.
// "2 cups (9 oz) rye flour" gives [flour rye]. Flags come back in a fixed
// order: butter, flour, rye, liquor.
func InferFlags(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var h hints
	for _, w := range words {
		switch w {
		case FlagButter:
			h.butter = true
		case FlagFlour:
			h.flour = true
		case FlagRye:
			h.rye = true
		default:
			h.liquor = h.liquor || slices.Contains(liquors, w)
		}
	}

	var out []string
	if h.butter {
		out = append(out, FlagButter)
	}
	if h.flour {
		out = append(out, FlagFlour)
	}
	if h.rye {
		out = append(out, FlagRye)
	}
	if h.liquor {
		out = append(out, FlagLiquor)
	}
	return out
}
