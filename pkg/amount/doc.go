// Package amount parses and renders recipe quantities.
//
// Quantities may be written as integers ("2"), decimals ("1.5", ".5"),
// fractions ("3/4"), mixed numbers ("1 1/2") or with Unicode fraction glyphs
// ("1½"). Parse turns any of these into a float64 and rejects everything
// else with a MALFORMED_NUMBER error.
//
// Rendering goes the other way. ToFraction maps a value onto the culinary
// fractions 1/16 through 7/8; Render selects between fraction, decimal and
// auto output:
//
//	amount.Render(0.5, amount.FormatFraction) // "1/2"
//	amount.Render(0.4, amount.FormatAuto)     // "0.4"
//	amount.Render(1.25, amount.FormatAuto)    // "1 1/4"
//	amount.Render(1/3.0, amount.FormatDecimal) // "0.33"
package amount
