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
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
)

//go:embed data/*.yaml
var catalogFS embed.FS

var (
	catalogOnce   sync.Once
	cachedCatalog *Catalog
	catalogErr    error
)

// Catalog holds the built-in recipes by name.
type Catalog struct {
	recipes map[string]*Recipe
}

// loadCatalog parses the embedded recipes once.
func loadCatalog(_ context.Context) (*Catalog, error) {
	hit := true
	catalogOnce.Do(func() {
		hit = false
		recipeCacheMisses.Inc()

		c := &Catalog{recipes: make(map[string]*Recipe)}
		err := fs.WalkDir(catalogFS, "data", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			content, readErr := catalogFS.ReadFile(path)
			if readErr != nil {
				return fmt.Errorf("failed to read %s: %w", path, readErr)
			}

			var r Recipe
			if parseErr := yaml.Unmarshal(content, &r); parseErr != nil {
				return fmt.Errorf("failed to parse %s: %w", path, parseErr)
			}
			if validErr := r.Validate(); validErr != nil {
				return fmt.Errorf("invalid recipe %s: %w", path, validErr)
			}
			if r.Name == "" {
				r.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
			}
			c.recipes[strings.ToLower(r.Name)] = &r
			return nil
		})
		if err != nil {
			catalogErr = cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to load recipe catalog", err)
			return
		}
		cachedCatalog = c
	})
	if hit {
		recipeCacheHits.Inc()
	}
	return cachedCatalog, catalogErr
}

// Lookup returns a copy of the built-in recipe called name.
func Lookup(ctx context.Context, name string) (*Recipe, error) {
	c, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := c.recipes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound, "recipe not found",
			map[string]any{"name": name, "available": c.names()})
	}
	return r.clone(), nil
}

// Names returns the names of the built-in recipes, sorted.
func Names(ctx context.Context) ([]string, error) {
	c, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.names(), nil
}

func (c *Catalog) names() []string {
	out := make([]string, 0, len(c.recipes))
	for _, r := range c.recipes {
		out = append(out, r.Name)
	}
	sort.Strings(out)
	return out
}

// clone copies r so callers never mutate the cached catalog.
func (r *Recipe) clone() *Recipe {
	out := *r
	out.Metadata = make(map[string]string, len(r.Metadata))
	for k, v := range r.Metadata {
		out.Metadata[k] = v
	}
	out.Ingredients = make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		out.Ingredients[i] = Ingredient{Text: ing.Text, Flags: append([]string(nil), ing.Flags...)}
	}
	out.Steps = append([]string(nil), r.Steps...)
	return &out
}
