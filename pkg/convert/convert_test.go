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

package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/ingredi/pkg/amount"
	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/units"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		amt       float64
		unit      string
		opts      *Options
		wantAmt   float64
		wantUnit  units.Unit
		wantTable string
	}{
		{"flour oz to cups", 9, "oz", &Options{To: "c", Flags: []string{"flour"}}, 2, units.Cup, TableFlour},
		{"rye flour oz to cups", 7, "oz", &Options{To: "cups", Flags: []string{"Rye Flour"}}, 2, units.Cup, TableRyeFlour},
		{"flour cups to oz", 2, "c", &Options{To: "oz", Flags: []string{"flour"}}, 9, units.Ounce, TableFlour},
		{"identity", 2, "cups", &Options{To: "c"}, 2, units.Cup, TableVolume},
		{"tsp to tbsp", 3, "tsp", &Options{To: "tbsp"}, 1, units.Tablespoon, TableVolume},
		{"gallon to quarts", 1, "gallon", &Options{To: "qt"}, 4, units.Quart, TableVolume},
		{"auto cups to quarts", 8, "c", nil, 2, units.Quart, TableVolume},
		{"auto tbsp to tsp", 0.5, "tbsp", nil, 1.5, units.Teaspoon, TableVolume},
		{"auto tsp to tbsp", 6, "tsp", nil, 2, units.Tablespoon, TableVolume},
		{"auto tbsp to cups", 8, "tbsp", nil, 0.5, units.Cup, TableVolume},
		{"weight oz to lb", 20, "oz", &Options{Type: FamilyWeight}, 1.25, units.Pound, TableWeight},
		{"weight small stays oz", 12, "oz", &Options{Type: FamilyWeight}, 12, units.Ounce, TableWeight},
		{"pound forces weight", 2, "lb", &Options{To: "oz"}, 32, units.Ounce, TableWeight},
		{"volume oz with type", 16, "oz", &Options{Type: FamilyVolume}, 2, units.Cup, TableVolume},
		{"liquor small stays oz", 2, "tbsp", &Options{Flags: []string{"liquor"}}, 1, units.Ounce, TableVolume},
		{"liquor oz to cups", 8, "oz", &Options{Flags: []string{"liquor"}}, 1, units.Cup, TableVolume},
		{"butter tbsp to stick", 8, "tbsp", &Options{Flags: []string{"butter"}}, 1, units.Stick, TableButter},
		{"butter small stays tbsp", 2, "stick", &Options{To: "tbsp", Flags: []string{"butter"}}, 16, units.Tablespoon, TableButter},
		{"butter oz", 4, "oz", &Options{To: "stick", Flags: []string{"unsalted butter"}}, 1, units.Stick, TableButter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(tt.amt, tt.unit, tt.opts)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAmt, res.Amount, 1e-9)
			assert.Equal(t, tt.wantUnit, res.Unit)
			assert.Equal(t, tt.wantTable, res.Table)
			assert.Empty(t, res.Diagnostics)
			assert.True(t, res.Converted())
		})
	}
}

func TestConvert_Diagnostics(t *testing.T) {
	tests := []struct {
		name      string
		amt       float64
		unit      string
		opts      *Options
		wantAmt   float64
		wantUnit  units.Unit
		wantCodes []cnserrors.ErrorCode
		converted bool
	}{
		{"ambiguous oz", 3, "oz", nil, 3, units.Ounce,
			[]cnserrors.ErrorCode{cnserrors.ErrCodeAmbiguousUnit}, false},
		{"ambiguous ounces with target", 3, "ounces", &Options{To: "c"}, 3, units.Ounce,
			[]cnserrors.ErrorCode{cnserrors.ErrCodeAmbiguousUnit}, false},
		{"stick without butter", 1, "stick", nil, 1, units.Stick,
			[]cnserrors.ErrorCode{cnserrors.ErrCodeIncompatibleUnits}, false},
		{"passthrough unit", 2, "onions", nil, 2, units.Unit("onions"),
			[]cnserrors.ErrorCode{cnserrors.ErrCodeUnknownUnit}, false},
		{"passthrough unit with target", 2, "cloves.", &Options{To: "c"}, 2, units.Unit("cloves"),
			[]cnserrors.ErrorCode{cnserrors.ErrCodeUnknownUnit}, false},
		{"no unit", 3, "", nil, 3, units.Unit(""), nil, false},
		{"unknown target falls back to auto", 3, "tsp", &Options{To: "bananas"}, 1, units.Tablespoon,
			[]cnserrors.ErrorCode{cnserrors.ErrCodeIncompatibleUnits}, true},
		{"butter auto unit not in table", 10, "c", &Options{Flags: []string{"butter"}}, 10, units.Cup,
			[]cnserrors.ErrorCode{cnserrors.ErrCodeIncompatibleUnits}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(tt.amt, tt.unit, tt.opts)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAmt, res.Amount, 1e-9)
			assert.Equal(t, tt.wantUnit, res.Unit)
			assert.Equal(t, tt.converted, res.Converted())

			var codes []cnserrors.ErrorCode
			for _, d := range res.Diagnostics {
				codes = append(codes, d.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		amt  float64
		opts *Options
	}{
		{"nan", math.NaN(), nil},
		{"inf", math.Inf(1), nil},
		{"bad type", 1, &Options{Type: "mass"}},
		{"bad format", 1, &Options{Format: "roman"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.amt, "c", tt.opts)
			require.Error(t, err)
			assert.True(t, cnserrors.HasCode(err, cnserrors.ErrCodeInvalidRequest))
		})
	}
}

func TestConvert_Rendering(t *testing.T) {
	tests := []struct {
		name   string
		amt    float64
		unit   string
		opts   *Options
		string string
	}{
		{"decimal default", 1, "tbsp", &Options{To: "c"}, "0.06 c"},
		{"fraction", 1, "tbsp", &Options{To: "c", Format: amount.FormatFraction}, "1/16 c"},
		{"auto exact", 12, "tbsp", &Options{To: "c", Format: amount.FormatAuto}, "3/4 c"},
		{"auto thirds", 1, "tsp", &Options{To: "tbsp", Format: amount.FormatAuto}, "1/3 tbsp"},
		{"auto inexact", 1, "tsp", &Options{To: "c", Format: amount.FormatAuto}, "0.02 c"},
		{"passthrough", 2, "potatoes", nil, "2 potatoes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(tt.amt, tt.unit, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.string, res.String)
		})
	}
}

func TestOptions_WithFlags(t *testing.T) {
	base := &Options{To: "c", Flags: []string{"flour"}}
	got := base.WithFlags("rye")

	assert.Equal(t, []string{"flour", "rye"}, got.Flags)
	assert.Equal(t, []string{"flour"}, base.Flags)
	assert.Equal(t, "c", got.To)

	var nilOpts *Options
	assert.Equal(t, []string{"butter"}, nilOpts.WithFlags("butter").Flags)
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily(" Weight ")
	require.NoError(t, err)
	assert.Equal(t, FamilyWeight, f)

	f, err = ParseFamily("")
	require.NoError(t, err)
	assert.Equal(t, Family(""), f)

	_, err = ParseFamily("length")
	assert.Error(t, err)
}

func TestSelectTable(t *testing.T) {
	tests := []struct {
		name  string
		from  units.Unit
		to    units.Unit
		typ   Family
		flags []string
		want  string
	}{
		{"default volume", units.Cup, "", "", nil, TableVolume},
		{"weight type", units.Ounce, "", FamilyWeight, nil, TableWeight},
		{"pound wins over butter", units.Pound, units.Stick, "", []string{"butter"}, TableWeight},
		{"flour oz to cup", units.Ounce, units.Cup, "", []string{"flour"}, TableFlour},
		{"flour oz no target", units.Ounce, "", "", []string{"flour"}, TableWeight},
		{"flour oz volume type", units.Ounce, "", FamilyVolume, []string{"flour"}, TableVolume},
		{"butter", units.Tablespoon, "", "", []string{"butter"}, TableButter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectTable(tt.from, tt.to, tt.typ, newHints(tt.flags))
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestInferFlags(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"2 cups (9 oz) flour", []string{FlagFlour}},
		{"1 1/2 c Rye Flour", []string{FlagFlour, FlagRye}},
		{"1/2 cup butter/shortening", []string{FlagButter}},
		{"2 oz dark rum", []string{FlagLiquor}},
		{"1 oz gin, chilled", []string{FlagLiquor}},
		{"2 c buttermilk", nil},
		{"1 tsp ginger", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, InferFlags(tt.text))
		})
	}
}
