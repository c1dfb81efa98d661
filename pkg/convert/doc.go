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

// Package convert converts cooking amounts between units.
//
// A conversion picks one table and scales by the ratio of the two unit
// factors in it:
//
//	volume  tsp:48 tbsp:16 oz:8 c:1 pt:0.5 qt:0.25 gal:1/16
//	weight  oz:16 lb:1
//	butter  tbsp:8 c:0.5 stick:1 oz:4 lb:0.25
//	flour   c:1 oz:4.5 (rye flour oz:3.5)
//
// The table comes from Options.Type, the units involved and the ingredient
// flags. "oz" is both a volume and a weight, so it only converts when Type
// is set or a liquor, flour or butter flag says which one is meant.
//
//	res, err := convert.Convert(9, "oz", &convert.Options{To: "c", Flags: []string{"flour"}})
//	// res.String == "2 c"
//
// Conditions that leave the amount unconverted, such as an ambiguous ounce
// or a stick of something that is not butter, are reported as Diagnostics on
// the Result rather than as errors.
//
// With no To the target unit is picked by magnitude: quarts from 8 cups up,
// teaspoons below 1/16 cup, tablespoons below 1/4 cup, cups otherwise.
// Weights of a pound or more are given in pounds.
package convert
