// Package parser finds recipe amounts in free text.
//
// An amount is a number followed by an optional space and a unit word:
// "2 cups", "1½c", ".5 tsp.", "1 to 2 cups". Numbers may be integers,
// decimals, fractions, mixed numbers, Unicode fraction glyphs or ranges of
// any two of those joined by "-", " - " or " to ". A number with no unit word
// after it is not an amount.
//
// Each match records its exact source text and byte offset so callers can
// rewrite the text in place:
//
//	amounts, err := parser.Parse("1 onion (about 2 c diced)")
//	// amounts[0]: {Amount: "1", Unit: "onion", Source: "1 onion", Offset: 0}
//	// amounts[1]: {Amount: "2", Unit: "c", Source: "2 c", Offset: 15}
package parser
