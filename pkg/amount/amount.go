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
	"strconv"
	"strings"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
)

// glyphs maps Unicode vulgar fraction characters to their text form.
var glyphs = map[rune]string{
	'½': "1/2",
	'⅓': "1/3",
	'⅔': "2/3",
	'¼': "1/4",
	'¾': "3/4",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
}

// GlyphChars is the set of supported fraction glyphs, usable inside a
// regular expression character class.
const GlyphChars = "½⅓⅔¼¾⅛⅜⅝⅞"

// ReplaceGlyphs rewrites fraction glyphs to "whole numerator/denominator"
// text: "1½" and "1 ½" become "1 1/2", a lone "½" becomes "1/2".
// Whitespace runs are collapsed and the result never starts with a space.
func ReplaceGlyphs(s string) string {
	if !strings.ContainsAny(s, GlyphChars) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if f, ok := glyphs[r]; ok {
			b.WriteByte(' ')
			b.WriteString(f)
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsDecimal reports whether s is written in decimal notation ("1.5", ".5").
func IsDecimal(s string) bool {
	return strings.Contains(s, ".")
}

// Parse converts an amount written as an integer ("2"), decimal ("1.5",
// ".5"), fraction ("3/2"), mixed number ("1 1/2") or with a fraction glyph
// ("1½") into its value. Anything else is a MALFORMED_NUMBER error.
func Parse(s string) (float64, error) {
	parts := strings.Fields(ReplaceGlyphs(s))

	switch len(parts) {
	case 1:
		if strings.Contains(parts[0], "/") {
			return parseFraction(s, parts[0])
		}
		return parseDecimal(s, parts[0])
	case 2:
		if !isDigits(parts[0]) {
			return 0, malformed(s, "whole part must be an integer")
		}
		whole, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, malformed(s, err.Error())
		}
		frac, err := parseFraction(s, parts[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	default:
		return 0, malformed(s, "expected whole, fraction or mixed number")
	}
}

func parseFraction(orig, s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok || !isDigits(num) || !isDigits(den) {
		return 0, malformed(orig, "fraction must be digits/digits")
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, malformed(orig, err.Error())
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, malformed(orig, err.Error())
	}
	if d == 0 {
		return 0, malformed(orig, "zero denominator")
	}
	return n / d, nil
}

func parseDecimal(orig, s string) (float64, error) {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	switch {
	case intPart == "" && fracPart == "":
		return 0, malformed(orig, "no digits")
	case intPart != "" && !isDigits(intPart):
		return 0, malformed(orig, "invalid digits")
	case hasDot && !isDigits(fracPart):
		return 0, malformed(orig, "invalid decimal digits")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed(orig, err.Error())
	}
	return v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func malformed(amount, reason string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeMalformedNumber,
		"malformed number: "+reason, map[string]any{"amount": amount})
}
