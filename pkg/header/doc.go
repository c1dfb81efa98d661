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

// Package header provides the common document header for ingredi inputs and
// outputs.
//
// Every document ingredi reads or writes (recipes, rescale, conversion and
// parse results) starts with the same Kubernetes-style fields:
//
//	kind: RecipeResult
//	apiVersion: ingredi.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.3.0
//
// # Usage
//
// Results are stamped with Init:
//
//	var h header.Header
//	h.Init(header.KindRescaleResult, header.APIVersion, version)
//
// Inputs may leave kind and apiVersion empty; readers only reject values that
// are set and do not match.
//
// # Kinds
//
//   - Recipe: a recipe document with servings, ingredients and steps
//   - RecipeResult: a recipe scaled to a multiplier or serving count
//   - RescaleResult: rescaled free text with per-amount replacements
//   - ConversionResult: a single unit conversion
//   - ParseResult: amounts found in free text
//   - NormalizeResult: canonical forms of unit spellings
package header
