package wordnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tokens []token) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.text)
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	cases := []struct {
		input    string
		integer  []string
		fraction []string
		scale    []string
	}{
		{"cent", []string{"cent"}, nil, nil},
		{"quatre-vingt-dix", []string{"quatre-vingt-dix"}, nil, nil},
		{"soixante et onze", []string{"soixante", "onze"}, nil, nil},
		{"Quatre Vingts Dix", []string{"quatre-vingts-dix"}, nil, nil},
		{"cinq virgule deux", []string{"cinq"}, []string{"deux"}, nil},
		{"virgule cinq", nil, []string{"cinq"}, nil},
		{"deux cent cinquante million", []string{"deux", "cent", "cinquante"}, nil, []string{"million"}},
		{"trois cent mille", []string{"trois"}, nil, []string{"cent", "mille"}},
		{"cinq virgule deux millions", []string{"cinq"}, []string{"deux"}, []string{"millions"}},
		{"mille cent", []string{"mille", "cent"}, nil, nil},
		{"neuf mille neuf", []string{"neuf", "mille", "neuf"}, nil, nil},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := e.tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.integer, texts(got.integer), "integer")
			assert.Equal(t, tt.fraction, texts(got.fraction), "fraction")
			assert.Equal(t, tt.scale, texts(got.scale), "scale")
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	input := "deux millions et quatre-vingt-dix virgule cinq"
	got, err := e.tokenize(input)
	require.NoError(t, err)

	all := append(append([]token{}, got.integer...), got.fraction...)
	want := map[string]int{
		"deux":             0,
		"millions":         5,
		"quatre-vingt-dix": 17,
		"cinq":             42,
	}
	require.Len(t, all, len(want))
	for _, tok := range all {
		assert.Equal(t, want[tok.text], tok.offset, tok.text)
	}
}

func TestTokenizePlaceValues(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	got, err := e.tokenize("zéro virgule un")
	require.NoError(t, err)
	require.Len(t, got.integer, 1)
	assert.Equal(t, 0, got.integer[0].place)
	assert.False(t, got.integer[0].marker)

	got, err = e.tokenize("deux millions trois")
	require.NoError(t, err)
	var places []int
	for _, tok := range got.integer {
		places = append(places, tok.place)
	}
	assert.Equal(t, []int{1, 7, 1}, places)
}

func TestStripScale(t *testing.T) {
	t.Parallel()

	tok := func(text string, place int) token { return token{text: text, place: place} }

	t.Run("empty", func(t *testing.T) {
		rest, scale, err := stripScale(nil)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Empty(t, scale)
	})
	t.Run("single token kept", func(t *testing.T) {
		rest, scale, err := stripScale([]token{tok("mille", 4)})
		require.NoError(t, err)
		assert.Equal(t, []string{"mille"}, texts(rest))
		assert.Empty(t, scale)
	})
	t.Run("tens never peeled", func(t *testing.T) {
		rest, scale, err := stripScale([]token{tok("un", 1), tok("vingt", 2)})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
		assert.Empty(t, scale)
	})
	t.Run("increasing suffix", func(t *testing.T) {
		rest, scale, err := stripScale([]token{tok("neuf", 1), tok("cent", 3), tok("mille", 4), tok("million", 7)})
		require.NoError(t, err)
		assert.Equal(t, []string{"neuf"}, texts(rest))
		assert.Equal(t, []string{"cent", "mille", "million"}, texts(scale))
	})
	t.Run("repeated scale", func(t *testing.T) {
		_, _, err := stripScale([]token{tok("mille", 4), tok("mille", 4)})
		assert.ErrorIs(t, err, ErrDescendingOrder)
	})
	t.Run("scale below clause", func(t *testing.T) {
		_, _, err := stripScale([]token{tok("cent", 3), tok("trois", 1), tok("cent", 3)})
		assert.ErrorIs(t, err, ErrDescendingOrder)
	})
}

func TestSplitDecimal(t *testing.T) {
	t.Parallel()

	marker := token{text: "virgule", marker: true}
	five := token{text: "cinq", place: 1}

	integer, fraction, err := splitDecimal([]token{five, marker, five})
	require.NoError(t, err)
	assert.Len(t, integer, 1)
	assert.Len(t, fraction, 1)

	_, _, err = splitDecimal([]token{five, marker})
	assert.ErrorIs(t, err, ErrEmptyFractionalPart)

	_, _, err = splitDecimal([]token{marker, five, marker, five})
	assert.ErrorIs(t, err, ErrMultipleDecimalMarkers)

	integer, fraction, err = splitDecimal([]token{five})
	require.NoError(t, err)
	assert.Len(t, integer, 1)
	assert.Empty(t, fraction)
}
