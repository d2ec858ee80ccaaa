package wordnum

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jeronymous/words2num/vocab"
)

// composeDecimal turns the words after the decimal marker into a fraction:
// the word at position p (1-based) contributes value × 10^-p. Only digit and
// zero words are allowed. The result is exact.
func composeDecimal(tokens []token) (decimal.Decimal, error) {
	if len(tokens) == 0 {
		return decimal.Zero, nil
	}

	var digits strings.Builder
	digits.Grow(len(tokens))
	for _, tok := range tokens {
		c := tok.entry.Class
		if c != vocab.Digit && c != vocab.Zero {
			return decimal.Decimal{}, tokenError(ErrInvalidDecimalSequence, tok,
				"only single digits may follow the decimal marker")
		}
		digits.WriteByte(byte('0' + tok.entry.Value.IntPart()))
	}

	coef, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		// Unreachable: every byte written above is a digit.
		return decimal.Decimal{}, tokenError(ErrInvalidDecimalSequence, tokens[0], "")
	}
	return decimal.NewFromBigInt(coef, -int32(len(tokens))), nil
}

// composeMultiplier returns the product of the trailing scale words, or 1.
func composeMultiplier(tokens []token) decimal.Decimal {
	m := decimal.NewFromInt(1)
	for _, tok := range tokens {
		m = m.Mul(tok.entry.Value)
	}
	return m
}
