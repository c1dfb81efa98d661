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

// Package recipe scales whole recipes.
//
// A Recipe document lists ingredient lines and steps:
//
//	kind: Recipe
//	apiVersion: ingredi.nvidia.com/v1alpha1
//	name: biscuits
//	servings: 8
//	ingredients:
//	  - 2 cups (9 oz) flour
//	  - text: 8 tbsp cold butter
//	    flags: [butter]
//	steps:
//	  - Cut the butter into the flour.
//
// Scaler rescales it for a number of servings or by a multiplier:
//
//	s := recipe.NewScaler(recipe.WithVersion(version))
//	res, err := s.Scale(ctx, r, recipe.Request{Servings: 16})
//
// Ingredient lines are rescaled concurrently, each with the request flags,
// its own flags and the flags its words imply ("flour", "butter", "rum").
// In steps only amounts in measuring units are rescaled, so "fold 4-5
// times" is left as written.
//
// A small catalog of built-in recipes is embedded in the binary and can be
// scaled by name with Lookup.
package recipe
