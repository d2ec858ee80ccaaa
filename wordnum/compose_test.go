package wordnum

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fractionTokens tokenizes s and returns the words after its decimal marker.
func fractionTokens(t *testing.T, e *Engine, s string) []token {
	t.Helper()
	tk, err := e.tokenize(s)
	require.NoError(t, err)
	return tk.fraction
}

func TestComposeDecimal(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	cases := []struct {
		input string
		want  string
	}{
		{"virgule cinq", "0.5"},
		{"virgule un quatre", "0.14"},
		{"virgule zéro zéro un", "0.001"},
		{"virgule zéro", "0"},
		{"virgule neuf neuf neuf", "0.999"},
	}
	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := composeDecimal(fractionTokens(t, e, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestComposeDecimalEmpty(t *testing.T) {
	t.Parallel()

	got, err := composeDecimal(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestComposeDecimalPrecision(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	// Forty digits, far beyond float64.
	phrase := "virgule " + strings.Repeat("un deux trois quatre cinq six sept huit neuf zéro ", 4)
	got, err := composeDecimal(fractionTokens(t, e, phrase))
	require.NoError(t, err)

	want, err := decimal.NewFromString("0." + strings.Repeat("1234567890", 4))
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got %s", got)
}

func TestComposeDecimalRejectsNonDigits(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	for _, s := range []string{"virgule dix", "virgule vingt", "virgule cinq cent deux"} {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			_, err := composeDecimal(fractionTokens(t, e, s))
			assert.ErrorIs(t, err, ErrInvalidDecimalSequence)
		})
	}
}

func TestComposeMultiplier(t *testing.T) {
	t.Parallel()
	e := loadEngine(t, "fr")

	assert.Equal(t, "1", composeMultiplier(nil).String())

	tk, err := e.tokenize("neuf cent mille millions")
	require.NoError(t, err)
	assert.Equal(t, "100000000000", composeMultiplier(tk.scale).String())
}
