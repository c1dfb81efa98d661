package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
)

func TestParseNumberFormats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		amount string
		unit   string
	}{
		{"whole", "1c", "1", "c"},
		{"whole multi digit", "12c", "12", "c"},
		{"whole spaced", "1 c", "1", "c"},
		{"whole multi digit spaced", "12 c", "12", "c"},
		{"decimal no leading digit", ".5c", ".5", "c"},
		{"decimal", "0.5c", "0.5", "c"},
		{"decimal over one", "1.5c", "1.5", "c"},
		{"decimal two places", "1.25 c", "1.25", "c"},
		{"fraction", "1/2c", "1/2", "c"},
		{"improper fraction", "3/2 c", "3/2", "c"},
		{"fraction two digit denominator", "1/12c", "1/12", "c"},
		{"mixed", "1 1/2c", "1 1/2", "c"},
		{"mixed spaced", "1 1/2 c", "1 1/2", "c"},
		{"mixed large", "12 1/12 c", "12 1/12", "c"},
		{"glyph alone", "½c", "1/2", "c"},
		{"glyph spaced", "½ c", "1/2", "c"},
		{"glyph mixed", "1½c", "1 1/2", "c"},
		{"glyph mixed spaced", "1 ½c", "1 1/2", "c"},
		{"glyph mixed both spaced", "1 ½ c", "1 1/2", "c"},
		{"tab before unit", "2\ttsp", "2", "tsp"},
		{"unit with period", "1 tsp.", "1", "tsp."},
		{"fluid ounces", "4 fl oz", "4", "fl oz"},
		{"fluid ounces dotted", "4 fl. oz", "4", "fl. oz"},
		{"fluid ounces spelled", "4 fluid ounces", "4", "fluid ounces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.amount, got[0].Amount)
			assert.Equal(t, tt.unit, got[0].Unit)
			assert.Equal(t, tt.input, got[0].Source)
			assert.Equal(t, 0, got[0].Offset)
			assert.Nil(t, got[0].Range)
		})
	}
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		input     string
		amount    string
		left      Bound
		right     Bound
		separator string
		unit      string
	}{
		{"1-2c", "1-2", Bound{"1", "1"}, Bound{"2", "2"}, "-", "c"},
		{"1 - 2 c", "1 - 2", Bound{"1", "1"}, Bound{"2", "2"}, " - ", "c"},
		{"1 to 2 cups", "1 to 2", Bound{"1", "1"}, Bound{"2", "2"}, " to ", "cups"},
		{"1.5-3c", "1.5-3", Bound{"1.5", "1.5"}, Bound{"3", "3"}, "-", "c"},
		{"1 1/2-2 tbsp", "1 1/2-2", Bound{"1 1/2", "1 1/2"}, Bound{"2", "2"}, "-", "tbsp"},
		{"½-1 c", "1/2-1", Bound{"1/2", "½"}, Bound{"1", "1"}, "-", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Len(t, got, 1)
			a := got[0]
			require.True(t, a.IsRange())
			assert.Equal(t, tt.amount, a.Amount)
			assert.Equal(t, tt.left, a.Range.Left)
			assert.Equal(t, tt.right, a.Range.Right)
			assert.Equal(t, tt.separator, a.Range.Separator)
			assert.Equal(t, tt.unit, a.Unit)
			assert.Equal(t, tt.input, a.Source)
		})
	}
}

func TestParseUnknownUnit(t *testing.T) {
	got, err := Parse("2 potatoes")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Amount{Amount: "2", Unit: "potatoes", Source: "2 potatoes"}, got[0])
}

func TestParseMultipleAmounts(t *testing.T) {
	text := "1 onion (about 2 c diced)"
	got, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, Amount{Amount: "1", Unit: "onion", Source: "1 onion", Offset: 0}, got[0])
	assert.Equal(t, Amount{Amount: "2", Unit: "c", Source: "2 c", Offset: 15}, got[1])
}

func TestParseMultipleLines(t *testing.T) {
	text := "2 cups (9 oz) flour\n\t1 tsp salt\n\t2/3 cup butter/shortening"
	got, err := Parse(text)
	require.NoError(t, err)

	want := []struct{ amount, unit, source string }{
		{"2", "cups", "2 cups"},
		{"9", "oz", "9 oz"},
		{"1", "tsp", "1 tsp"},
		{"2/3", "cup", "2/3 cup"},
	}
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.amount, got[i].Amount)
		assert.Equal(t, w.unit, got[i].Unit)
		assert.Equal(t, w.source, got[i].Source)
	}
}

func TestParseOffsets(t *testing.T) {
	texts := []string{
		"1 c sugar and 1 c sugar",
		"mix ½ c milk with 1½ tbsp. butter",
		"2-3 tbsp oil, then 1 to 2 cups water",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			got, err := Parse(text)
			require.NoError(t, err)
			for _, a := range got {
				assert.Equal(t, a.Source, text[a.Offset:a.End()])
			}
		})
	}

	got, err := Parse("1 c sugar and 1 c sugar")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Offset, got[1].Offset)
}

func TestParseNoAmounts(t *testing.T) {
	inputs := []string{"", "salt and pepper to taste", "serves 4", "step 1."}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.ErrorIs(t, err, ErrNoAmounts)
			assert.True(t, cnserrors.HasCode(err, cnserrors.ErrCodeNotFound))
			assert.Empty(t, got)
		})
	}
}

func TestParseFirst(t *testing.T) {
	a, err := ParseFirst("about 3 tbsp butter and 1 c sugar")
	require.NoError(t, err)
	assert.Equal(t, "3", a.Amount)
	assert.Equal(t, "tbsp", a.Unit)
	assert.Equal(t, 6, a.Offset)

	_, err = ParseFirst("nothing here")
	assert.ErrorIs(t, err, ErrNoAmounts)
}

func TestAmountValue(t *testing.T) {
	a, err := ParseFirst("1½ c")
	require.NoError(t, err)
	v, err := a.Value()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, v, 1e-9)

	r, err := ParseFirst("1-2 c")
	require.NoError(t, err)
	_, err = r.Value()
	assert.True(t, cnserrors.HasCode(err, cnserrors.ErrCodeInvalidRequest))
}

func TestUnits(t *testing.T) {
	got, err := Parse("1 c flour, 2 tsp. salt, 1 c. milk, 3 tsp sugar")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "tsp"}, Units(got))
}

func TestParseMultiByteOffsets(t *testing.T) {
	text := "½ c then ¾ c"
	got, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, strings.Index(text, "¾"), got[1].Offset)
}
