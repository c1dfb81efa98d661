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

package amount

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format controls how an amount is rendered back to text.
type Format string

const (
	// FormatNone leaves the amount as a decimal value.
	FormatNone Format = ""
	// FormatFraction always renders the nearest culinary fraction.
	FormatFraction Format = "fraction"
	// FormatDecimal renders a decimal rounded to two places.
	FormatDecimal Format = "decimal"
	// FormatAuto renders a fraction when one matches exactly, else a decimal.
	FormatAuto Format = "auto"
)

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format. FormatNone is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatNone, FormatFraction, FormatDecimal, FormatAuto:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return FormatNone, fmt.Errorf("invalid amount format %q, supported values: %v", s, SupportedFormats())
	}
	return f, nil
}

// SupportedFormats returns the named amount formats.
func SupportedFormats() []string {
	return []string{string(FormatFraction), string(FormatDecimal), string(FormatAuto)}
}

type fraction struct {
	num, den int
}

func (f fraction) value() float64 {
	return float64(f.num) / float64(f.den)
}

func (f fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// fractions are the culinary fractions amounts are rendered to, ascending.
var fractions = []fraction{
	{1, 16}, {1, 8}, {1, 6}, {1, 4}, {1, 3}, {3, 8},
	{1, 2}, {5, 8}, {2, 3}, {3, 4}, {7, 8},
}

// dropThreshold is the largest remainder discarded when forcing a fraction.
const dropThreshold = 0.03

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Render formats v according to f.
func Render(v float64, f Format) string {
	switch f {
	case FormatFraction:
		return ToFraction(v, true)
	case FormatAuto:
		return ToFraction(v, false)
	default:
		return FormatDecimalValue(v)
	}
}

// FormatDecimalValue renders v rounded to two decimal places without
// trailing zeros ("0.5", "1", "0.33").
func FormatDecimalValue(v float64) string {
	r := round2(v)
	if r == 0 {
		r = 0 // normalizes -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ToFraction renders v as a whole number plus one of the culinary
// fractions (1/16 through 7/8).
//
// The fractional part is rounded to two decimals and looked up in the
// fraction table. When it has no exact entry and exact is false, the value
// is returned as a rounded decimal. When exact is true a remainder of 0.03
// or less is dropped, otherwise the nearest entry wins (the lower entry on a
// tie) and a remainder nearest to 1 rounds the whole part up.
func ToFraction(v float64, exact bool) string {
	if v < 0 {
		return "-" + ToFraction(-v, exact)
	}

	whole := math.Floor(v)
	rem := round2(v - whole)
	if rem == 0 {
		return formatWhole(whole)
	}
	if rem >= 1 {
		return formatWhole(whole + 1)
	}

	for _, f := range fractions {
		if rem == round2(f.value()) {
			return joinFraction(whole, f)
		}
	}

	if !exact {
		return FormatDecimalValue(whole + rem)
	}

	if rem <= dropThreshold {
		return formatWhole(whole)
	}

	best := -1
	bestDelta := math.Inf(1)
	for i, f := range fractions {
		if d := math.Abs(f.value() - rem); d < bestDelta {
			best, bestDelta = i, d
		}
	}
	if math.Abs(1-rem) < bestDelta {
		return formatWhole(whole + 1)
	}
	return joinFraction(whole, fractions[best])
}

func formatWhole(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func joinFraction(whole float64, f fraction) string {
	if whole == 0 {
		return f.String()
	}
	return formatWhole(whole) + " " + f.String()
}
