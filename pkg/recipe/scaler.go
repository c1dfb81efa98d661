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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/ingredi/pkg/amount"
	"github.com/NVIDIA/ingredi/pkg/convert"
	"github.com/NVIDIA/ingredi/pkg/defaults"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/header"
	"github.com/NVIDIA/ingredi/pkg/rescale"
)

// Request says how to scale a recipe. Exactly one of Servings and
// Multiplier is set.
type Request struct {
	// Servings is the number of servings wanted.
	Servings int `json:"servings,omitempty" yaml:"servings,omitempty"`

	// Multiplier scales every amount directly.
	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`

	// Flags apply to every ingredient line.
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`

	// Type forces the family of every "oz".
	Type convert.Family `json:"type,omitempty" yaml:"type,omitempty"`

	// Format overrides the Scaler's rendering format.
	Format amount.Format `json:"format,omitempty" yaml:"format,omitempty"`
}

// multiplier resolves the request against the recipe's servings.
func (q *Request) multiplier(r *Recipe) (float64, error) {
	switch {
	case q.Multiplier != nil && q.Servings != 0:
		return 0, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "servings and multiplier are mutually exclusive")
	case q.Multiplier != nil:
		return *q.Multiplier, rescale.ValidateMultiplier(*q.Multiplier)
	case q.Servings < 0:
		return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "servings must be positive",
			map[string]any{"servings": q.Servings})
	case q.Servings > 0:
		if r.Servings == 0 {
			return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				"recipe does not state its servings, use a multiplier", map[string]any{"recipe": r.Name})
		}
		return float64(q.Servings) / float64(r.Servings), nil
	default:
		return 0, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "servings or multiplier is required")
	}
}

// ScaledIngredient is one rescaled ingredient line.
type ScaledIngredient struct {
	Original    string               `json:"original" yaml:"original"`
	Text        string               `json:"text" yaml:"text"`
	Flags       []string             `json:"flags,omitempty" yaml:"flags,omitempty"`
	Diagnostics []convert.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Result is the RecipeResult document.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Name string `json:"name" yaml:"name"`

	// Servings is the scaled number of servings, zero when unknown.
	Servings int `json:"servings,omitempty" yaml:"servings,omitempty"`

	OriginalServings int                `json:"originalServings,omitempty" yaml:"originalServings,omitempty"`
	Multiplier       float64            `json:"multiplier" yaml:"multiplier"`
	Ingredients      []ScaledIngredient `json:"ingredients" yaml:"ingredients"`
	Steps            []string           `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Text renders the scaled recipe as plain text.
func (r *Result) Text() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if r.Servings > 0 {
		fmt.Fprintf(&b, " (serves %d)", r.Servings)
	}
	b.WriteString("\n\n")
	for _, ing := range r.Ingredients {
		b.WriteString(ing.Text)
		b.WriteByte('\n')
	}
	if len(r.Steps) > 0 {
		b.WriteByte('\n')
		for i, s := range r.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Option is a functional option for configuring Scaler instances.
type Option func(*Scaler)

// WithVersion sets the version stamped into result metadata.
func WithVersion(version string) Option {
	return func(s *Scaler) {
		s.Version = version
	}
}

// WithFormat sets the default rendering format.
func WithFormat(f amount.Format) Option {
	return func(s *Scaler) {
		s.Format = f
	}
}

// WithConcurrency sets how many lines are rescaled in parallel.
func WithConcurrency(n int) Option {
	return func(s *Scaler) {
		if n > 0 {
			s.Concurrency = n
		}
	}
}

// Scaler rescales whole recipes.
type Scaler struct {
	Version     string
	Format      amount.Format
	Concurrency int
}

// NewScaler returns a Scaler configured by opts.
func NewScaler(opts ...Option) *Scaler {
	s := &Scaler{Concurrency: defaults.ScaleConcurrency}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scale rescales every ingredient line and the measured amounts in the
// steps. Each line's flags are the request flags, the ingredient's own flags
// and those read from its text. Lines are scaled concurrently and the result
// keeps their order.
func (s *Scaler) Scale(ctx context.Context, r *Recipe, q Request) (*Result, error) {
	start := time.Now()
	defer func() {
		recipeScaleDuration.Observe(time.Since(start).Seconds())
	}()

	if err := r.Validate(); err != nil {
		return nil, err
	}
	m, err := q.multiplier(r)
	if err != nil {
		return nil, err
	}

	format := s.Format
	if q.Format != amount.FormatNone {
		format = q.Format
	}
	base := &convert.Options{Type: q.Type, Format: format}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Name:             r.Name,
		OriginalServings: r.Servings,
		Multiplier:       m,
		Ingredients:      make([]ScaledIngredient, len(r.Ingredients)),
		Steps:            make([]string, len(r.Steps)),
	}
	if q.Servings > 0 {
		res.Servings = q.Servings
	} else if r.Servings > 0 {
		res.Servings = int(float64(r.Servings)*m + 0.5)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.RecipeScaleTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, ing := range r.Ingredients {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "recipe scaling canceled", err)
			}
			flags := mergeFlags(q.Flags, ing.Flags, convert.InferFlags(ing.Text))
			out, err := rescale.Apply(ing.Text, m, base.WithFlags(flags...))
			if err != nil {
				return cnserrors.WrapWithContext(cnserrors.CodeOf(err), "failed to scale ingredient", err,
					map[string]any{"index": i, "text": ing.Text})
			}
			res.Ingredients[i] = ScaledIngredient{
				Original:    ing.Text,
				Text:        out.Rescaled,
				Flags:       flags,
				Diagnostics: out.Diagnostics,
			}
			return nil
		})
	}

	for i, step := range r.Steps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "recipe scaling canceled", err)
			}
			flags := mergeFlags(q.Flags, convert.InferFlags(step))
			out, err := rescale.ApplyCanonical(step, m, base.WithFlags(flags...))
			if err != nil {
				return cnserrors.WrapWithContext(cnserrors.CodeOf(err), "failed to scale step", err,
					map[string]any{"index": i})
			}
			res.Steps[i] = out.Rescaled
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, ing := range res.Ingredients {
		for _, d := range ing.Diagnostics {
			slog.Debug("ingredient left unconverted",
				"recipe", r.Name,
				"line", ing.Original,
				"code", d.Code,
			)
		}
	}

	res.Init(header.KindRecipeResult, header.APIVersion, s.Version)
	return res, nil
}

func (s *Scaler) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return defaults.ScaleConcurrency
}

// mergeFlags concatenates flag lists, dropping repeats.
func mergeFlags(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range lists {
		for _, f := range l {
			k := strings.ToLower(strings.TrimSpace(f))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, f)
		}
	}
	return out
}
