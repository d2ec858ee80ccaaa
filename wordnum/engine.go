// Package wordnum evaluates spelled-out number phrases into exact values.
//
// An Engine is built once per locale and parameterized by a *vocab.Locale;
// the grammar is shared by every locale:
//
//   - Words are folded (NFC, locale-aware lowercasing) and split on
//     whitespace, commas and hyphens. Conjunctions ("et", "and") are dropped.
//   - Compound numerals are merged ("quatre" "vingt" "dix" -> 90).
//   - Trailing scale words multiply the whole phrase ("cinq virgule deux
//     millions" = 5200000).
//   - A single decimal marker splits the phrase; the words after it are read
//     digit by digit ("trois virgule un quatre" = 3.14).
//   - The integer part is folded by a finite-state transducer over word
//     classes; emitted components must have strictly decreasing place values.
//
// Results are shopspring decimals and exact for every scale word in the
// tables, including 10^303.
//
// An Engine is read-only after New and safe for concurrent use.
//
// Known limitations:
//
//   - Ordinals, negative numbers and fractions ("trois quarts") are not
//     recognized.
//   - Only single digit words may follow the decimal marker.
//   - Input is limited to 1 MiB.
package wordnum

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jeronymous/words2num/compound"
	"github.com/Jeronymous/words2num/vocab"
)

// Engine evaluates phrases of one locale.
type Engine struct {
	locale   *vocab.Locale
	compound *compound.Normalizer
}

// New returns an Engine for loc.
func New(loc *vocab.Locale) *Engine {
	return &Engine{
		locale:   loc,
		compound: compound.New(compound.FromParts(loc.Compounds)),
	}
}

// Locale returns the locale the engine was built for.
func (e *Engine) Locale() *vocab.Locale { return e.locale }

// Evaluate returns the value of text. The phrase must consist of number
// words only; any error wraps one of the Err* sentinels in a *ParseError.
func (e *Engine) Evaluate(text string) (decimal.Decimal, error) {
	t, err := e.tokenize(text)
	if err != nil {
		return decimal.Decimal{}, err
	}

	components, err := evaluateInteger(t.integer)
	if err != nil {
		return decimal.Decimal{}, err
	}
	fraction, err := composeDecimal(t.fraction)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return sum(components).Add(fraction).Mul(composeMultiplier(t.scale)), nil
}

// WordKind is the role a single word plays in a number phrase.
type WordKind uint8

const (
	NotNumber       WordKind = iota
	NumberWord               // a vocabulary entry
	MarkerWord               // a decimal marker
	ConjunctionWord          // a joining word such as "et"
)

// Kind classifies a single word, or a hyphenated compound whose parts are
// all number words. Case and composition are folded first.
func (e *Engine) Kind(word string) WordKind {
	w := e.locale.Fold(word)
	switch {
	case e.locale.IsDecimalMarker(w):
		return MarkerWord
	case e.locale.IsConjunction(w):
		return ConjunctionWord
	}
	if _, ok := e.locale.Table.Lookup(w); ok {
		return NumberWord
	}

	// "quatre-vingt-dix", "vingt-et-un"
	parts := 0
	for p := range strings.SplitSeq(w, compound.Separator) {
		if e.locale.IsConjunction(p) {
			continue
		}
		if _, ok := e.locale.Table.Lookup(p); !ok {
			return NotNumber
		}
		parts++
	}
	if parts < 2 {
		return NotNumber
	}
	return NumberWord
}
