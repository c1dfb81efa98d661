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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/server"
)

func TestIngredient_UnmarshalYAML(t *testing.T) {
	doc := `
name: test
ingredients:
  - 1 c sugar
  - text: 2 tbsp butter
    flags: [butter]
`
	var r Recipe
	require.NoError(t, yaml.Unmarshal([]byte(doc), &r))
	assert.Equal(t, []Ingredient{
		{Text: "1 c sugar"},
		{Text: "2 tbsp butter", Flags: []string{"butter"}},
	}, r.Ingredients)
}

func TestIngredient_UnmarshalJSON(t *testing.T) {
	doc := `{"name":"test","ingredients":["1 c sugar",{"text":"2 oz rum","flags":["liquor"]}]}`
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	assert.Equal(t, []Ingredient{
		{Text: "1 c sugar"},
		{Text: "2 oz rum", Flags: []string{"liquor"}},
	}, r.Ingredients)

	assert.Error(t, json.Unmarshal([]byte(`{"ingredients":[42]}`), &r))
}

func TestParseRecipeFromBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     bool
	}{
		{"yaml", "kind: Recipe\nname: x\ningredients: [1 c milk]\n", "application/yaml", false},
		{"json", `{"name":"x","servings":2,"ingredients":["1 c milk"]}`, "application/json", false},
		{"wrong kind", "kind: RecipeResult\nname: x\ningredients: [1 c milk]\n", "application/yaml", true},
		{"wrong apiVersion", `{"apiVersion":"v0","ingredients":["1 c"]}`, "application/json", true},
		{"no ingredients", `{"name":"x"}`, "application/json", true},
		{"blank ingredient", `{"ingredients":["  "]}`, "application/json", true},
		{"negative servings", `{"servings":-2,"ingredients":["1 c"]}`, "application/json", true},
		{"empty", "", "application/json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRecipeFromBody(strings.NewReader(tt.body), tt.contentType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", r.Name)
		})
	}
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	names, err := Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"biscuits", "old-fashioned", "pancakes"}, names)

	r, err := Lookup(ctx, " Pancakes ")
	require.NoError(t, err)
	assert.Equal(t, "pancakes", r.Name)
	assert.Equal(t, 4, r.Servings)
	assert.NoError(t, r.Validate())

	// Lookups hand out copies.
	r.Ingredients[0].Text = "changed"
	again, err := Lookup(ctx, "pancakes")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Ingredients[0].Text)

	_, err = Lookup(ctx, "lasagna")
	require.Error(t, err)
	assert.True(t, cnserrors.HasCode(err, cnserrors.ErrCodeNotFound))
}

func TestHandleScale(t *testing.T) {
	s := NewScaler(WithVersion("dev"))

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		contentType string
		wantCode    int
		wantFirst   string
	}{
		{
			name:      "get built-in",
			method:    http.MethodGet,
			target:    "/v1/recipe?name=biscuits&servings=16",
			wantCode:  http.StatusOK,
			wantFirst: "4 c (1 1/8 lb) flour",
		},
		{
			name:        "post inline yaml",
			method:      http.MethodPost,
			target:      "/v1/recipe",
			body:        "recipe:\n  name: tea\n  servings: 1\n  ingredients: [1 c water]\nservings: 3\n",
			contentType: "application/x-yaml",
			wantCode:    http.StatusOK,
			wantFirst:   "3 c water",
		},
		{
			name:        "post name json",
			method:      http.MethodPost,
			target:      "/v1/recipe",
			body:        `{"name":"old-fashioned","multiplier":2}`,
			contentType: "application/json",
			wantCode:    http.StatusOK,
			wantFirst:   "4 oz bourbon",
		},
		{name: "unknown recipe", method: http.MethodGet, target: "/v1/recipe?name=lasagna&servings=2", wantCode: http.StatusNotFound},
		{name: "no recipe", method: http.MethodGet, target: "/v1/recipe?servings=2", wantCode: http.StatusBadRequest},
		{name: "bad servings", method: http.MethodGet, target: "/v1/recipe?name=biscuits&servings=many", wantCode: http.StatusBadRequest},
		{name: "missing servings", method: http.MethodGet, target: "/v1/recipe?name=biscuits", wantCode: http.StatusBadRequest},
		{
			name:        "name and recipe",
			method:      http.MethodPost,
			target:      "/v1/recipe",
			body:        `{"name":"biscuits","recipe":{"ingredients":["1 c"]},"servings":2}`,
			contentType: "application/json",
			wantCode:    http.StatusBadRequest,
		},
		{name: "method", method: http.MethodDelete, target: "/v1/recipe", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			s.HandleScale(w, req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				var resp server.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Code)
				return
			}
			var res Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.NotEmpty(t, res.Ingredients)
			assert.Equal(t, tt.wantFirst, res.Ingredients[0].Text)
		})
	}
}

func TestHandleCatalog(t *testing.T) {
	s := NewScaler()

	w := httptest.NewRecorder()
	s.HandleCatalog(w, httptest.NewRequest(http.MethodGet, "/v1/recipes", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=")

	var res CatalogResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Recipes, "pancakes")

	w = httptest.NewRecorder()
	s.HandleCatalog(w, httptest.NewRequest(http.MethodPost, "/v1/recipes", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET", w.Header().Get("Allow"))
}
