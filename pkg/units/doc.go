// Package units normalizes the many ways recipes spell measurement units
// ("T", "tbs.", "Tablespoons", "fl oz") into one canonical token per unit.
//
// Only the single letters "t" (teaspoon) and "T" (tablespoon) are case
// sensitive. Anything that is not a known spelling passes through unchanged,
// because the word following a number is often an ingredient rather than a
// unit ("2 onions").
//
//	units.Normalize("Tbsp.")   // "tbsp"
//	units.Normalize("ounces")  // "oz"
//	units.Normalize("onions")  // "onions"
package units
