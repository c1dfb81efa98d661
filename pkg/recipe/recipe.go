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

package recipe

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/serializer"
)

// Ingredient is one ingredient line. In YAML and JSON it may be written as
// a plain string or as an object with text and flags.
type Ingredient struct {
	// Text is the line as written, e.g. "2 cups (9 oz) flour".
	Text string `json:"text" yaml:"text"`

	// Flags are hints such as "butter" added to those read from Text.
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

type ingredientFields Ingredient

// UnmarshalYAML accepts a scalar line or a mapping.
func (i *Ingredient) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		i.Text = value.Value
		i.Flags = nil
		return nil
	}
	var f ingredientFields
	if err := value.Decode(&f); err != nil {
		return err
	}
	*i = Ingredient(f)
	return nil
}

// UnmarshalJSON accepts a string line or an object.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = Ingredient{Text: s}
		return nil
	}
	var f ingredientFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*i = Ingredient(f)
	return nil
}

// Recipe is the Recipe document.
type Recipe struct {
	header.Header `json:",inline" yaml:",inline"`

	Name        string       `json:"name" yaml:"name"`
	Servings    int          `json:"servings,omitempty" yaml:"servings,omitempty"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Steps       []string     `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Validate checks the document header and that there is something to scale.
func (r *Recipe) Validate() error {
	if r == nil {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}
	if r.Kind != "" && r.Kind != header.KindRecipe {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "invalid kind",
			map[string]any{"kind": r.Kind, "expected": header.KindRecipe})
	}
	if r.APIVersion != "" && r.APIVersion != header.APIVersion {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "invalid apiVersion",
			map[string]any{"apiVersion": r.APIVersion, "expected": header.APIVersion})
	}
	if len(r.Ingredients) == 0 {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "recipe has no ingredients")
	}
	if r.Servings < 0 {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "servings cannot be negative",
			map[string]any{"servings": r.Servings})
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Text) == "" {
			return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "ingredient text is empty",
				map[string]any{"index": i})
		}
	}
	return nil
}

// ParseRecipeFromBody decodes a JSON or YAML Recipe from an HTTP body and
// validates it.
func ParseRecipeFromBody(body io.Reader, contentType string) (*Recipe, error) {
	var r Recipe
	if err := serializer.DecodeBody(body, contentType, &r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
