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

// Package rescale multiplies the amounts found in free text and rewrites
// them in legible units.
//
//	out, err := rescale.Rescale("1 - 3 tbsp sugar", 1.0/3, nil)
//	// out == "1 tsp - 1 tbsp sugar"
//
// Every amount found by the parser is multiplied, converted with the
// convert package and substituted back by byte offset, so repeated
// identical amounts are each rewritten once and the text around them is
// untouched. Amounts written as decimals stay decimals; the rest render as
// fractions when one fits exactly.
//
// Apply returns the same text together with a Replacement per amount and
// the diagnostics of amounts that could not be converted. Request and
// Handler expose single and bulk rescaling over HTTP.
package rescale
