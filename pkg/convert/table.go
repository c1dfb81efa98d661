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
	"github.com/NVIDIA/ingredi/pkg/units"
)

// Table names.
const (
	TableVolume   = "volume"
	TableWeight   = "weight"
	TableButter   = "butter"
	TableFlour    = "flour"
	TableRyeFlour = "rye-flour"
)

// Table maps units to scale factors relative to one reference unit, so
// converting between any two entries is Factors[to] / Factors[from].
type Table struct {
	Name    string
	Family  Family
	Factors map[units.Unit]float64
}

// Has reports whether u has a factor in t.
func (t *Table) Has(u units.Unit) bool {
	_, ok := t.Factors[u]
	return ok
}

// Tables are built per call and never shared between conversions.

func volumeTable() *Table {
	return &Table{
		Name:   TableVolume,
		Family: FamilyVolume,
		Factors: map[units.Unit]float64{
			units.Teaspoon:   48,
			units.Tablespoon: 16,
			units.Ounce:      8,
			units.Cup:        1,
			units.Pint:       0.5,
			units.Quart:      0.25,
			units.Gallon:     1.0 / 16,
		},
	}
}

func weightTable() *Table {
	return &Table{
		Name:   TableWeight,
		Family: FamilyWeight,
		Factors: map[units.Unit]float64{
			units.Ounce: 16,
			units.Pound: 1,
		},
	}
}

func butterTable() *Table {
	return &Table{
		Name:   TableButter,
		Family: FamilyVolume,
		Factors: map[units.Unit]float64{
			units.Tablespoon: 8,
			units.Cup:        0.5,
			units.Stick:      1,
			units.Ounce:      4,
			units.Pound:      0.25,
		},
	}
}

func flourTable(rye bool) *Table {
	t := &Table{
		Name:   TableFlour,
		Family: FamilyVolume,
		Factors: map[units.Unit]float64{
			units.Cup:   1,
			units.Ounce: 4.5,
		},
	}
	if rye {
		t.Name = TableRyeFlour
		t.Factors[units.Ounce] = 3.5
	}
	return t
}

// selectTable picks the table for a conversion. The first matching rule wins.
func selectTable(from, to units.Unit, typ Family, h hints) *Table {
	isOzOrCup := func(u units.Unit) bool { return u == units.Ounce || u == units.Cup }

	switch {
	case typ == FamilyWeight || from == units.Pound || to == units.Pound:
		return weightTable()
	case h.flour && isOzOrCup(from) && isOzOrCup(to):
		return flourTable(h.rye)
	case h.flour && from == units.Ounce && typ != FamilyVolume:
		// Flour weighed in ounces with no cup target stays a weight.
		return weightTable()
	case h.butter:
		return butterTable()
	default:
		return volumeTable()
	}
}

// autoUnit picks the most legible unit for amt, given in the from unit of t.
func autoUnit(t *Table, from units.Unit, amt float64, h hints) units.Unit {
	if t.Family == FamilyWeight {
		if amt/t.Factors[from]*t.Factors[units.Ounce] >= 16 {
			return units.Pound
		}
		return units.Ounce
	}

	cups := amt / t.Factors[from] * t.Factors[units.Cup]
	switch {
	case cups >= 8:
		return units.Quart
	case cups < 1.0/16:
		return units.Teaspoon
	case cups <= 0.5 && h.liquor:
		return units.Ounce
	case h.butter:
		if cups < 0.5 {
			return units.Tablespoon
		}
		return units.Stick
	case cups < 0.25:
		return units.Tablespoon
	default:
		return units.Cup
	}
}
