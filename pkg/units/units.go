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
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Unit is a canonical unit token, or a passthrough value for spellings
// that are not measurement units ("onion", "potatoes").
type Unit string

// Canonical units.
const (
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	Ounce      Unit = "oz"
	Cup        Unit = "c"
	Pint       Unit = "pt"
	Quart      Unit = "qt"
	Gallon     Unit = "gal"
	Pound      Unit = "lb"
	Stick      Unit = "stick"
)

// String returns the string representation of the Unit.
func (u Unit) String() string {
	return string(u)
}

// synonyms maps case-folded spellings to their canonical unit.
var synonyms = map[string]Unit{
	"tsp":       Teaspoon,
	"tsps":      Teaspoon,
	"teaspoon":  Teaspoon,
	"teaspoons": Teaspoon,

	"tbl":         Tablespoon,
	"tbls":        Tablespoon,
	"tbs":         Tablespoon,
	"tbsp":        Tablespoon,
	"tbsps":       Tablespoon,
	"tablespoon":  Tablespoon,
	"tablespoons": Tablespoon,

	"oz":           Ounce,
	"ozs":          Ounce,
	"ounce":        Ounce,
	"ounces":       Ounce,
	"floz":         Ounce,
	"fl oz":        Ounce,
	"fl. oz":       Ounce,
	"fluid oz":     Ounce,
	"fluid ounce":  Ounce,
	"fluid ounces": Ounce,

	"c":    Cup,
	"cup":  Cup,
	"cups": Cup,

	"pt":    Pint,
	"pts":   Pint,
	"pint":  Pint,
	"pints": Pint,

	"qt":     Quart,
	"qts":    Quart,
	"quart":  Quart,
	"quarts": Quart,

	"gal":     Gallon,
	"gals":    Gallon,
	"gallon":  Gallon,
	"gallons": Gallon,

	"lb":     Pound,
	"lbs":    Pound,
	"pound":  Pound,
	"pounds": Pound,

	"stick":  Stick,
	"sticks": Stick,
}

var canonical = []Unit{Teaspoon, Tablespoon, Ounce, Cup, Pint, Quart, Gallon, Pound, Stick}

// Normalize maps a raw unit spelling to its canonical Unit.
//
// Surrounding whitespace and trailing periods are removed first ("tsp." is
// "tsp"). The single letters "t" and "T" are matched case-sensitively as
// teaspoon and tablespoon; every other spelling is matched case-insensitively.
// Unrecognized input is returned as-is after cleanup so callers can treat it
// as a non-convertible unit.
func Normalize(raw string) Unit {
	s := clean(raw)

	switch s {
	case "t":
		return Teaspoon
	case "T":
		return Tablespoon
	}

	// Casers carry transform state and are not shared across goroutines.
	if u, ok := synonyms[cases.Fold().String(s)]; ok {
		return u
	}
	return Unit(s)
}

// clean collapses whitespace runs and strips a single trailing period. A
// period is kept when removing it would leave another one at the end
// ("tsp..", "a . ."), so the result of clean is always its own fixed point.
func clean(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if !strings.HasSuffix(s, ".") {
		return s
	}
	r := strings.TrimRightFunc(s[:len(s)-1], unicode.IsSpace)
	if strings.HasSuffix(r, ".") {
		return s
	}
	return r
}

// IsCanonical reports whether u is one of the canonical units.
func IsCanonical(u Unit) bool {
	for _, c := range canonical {
		if u == c {
			return true
		}
	}
	return false
}

// Canonical returns all canonical units, smallest volume first.
func Canonical() []Unit {
	out := make([]Unit, len(canonical))
	copy(out, canonical)
	return out
}

// SupportedSpellings returns every recognized spelling for u, including the
// case-sensitive single-letter forms. The result is empty for passthrough units.
func SupportedSpellings(u Unit) []string {
	var out []string
	switch u {
	case Teaspoon:
		out = append(out, "t")
	case Tablespoon:
		out = append(out, "T")
	}
	for k, v := range synonyms {
		if v == u {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
