// Package words2num converts spelled-out numbers into exact values.
//
// The package evaluates whole phrases and rewrites number phrases inside
// running text, for the locales shipped with the module:
//
//   - Evaluate turns a phrase into an exact decimal:
//     "quatre-vingt-dix-neuf" -> 99, "cinq virgule deux millions" -> 5200000.
//   - EvaluateFloat returns the same value as a float64.
//   - Denormalize replaces number phrases in text with digits:
//     "il y a deux cent cinquante personnes" -> "il y a 250 personnes".
//
// Locales are selected by tag. Regional variants and hyphenated forms are
// accepted ("fr_CA", "fr-CA"); unknown regions fall back to their language
// ("fr_XX" -> fr).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Ordinals, negative numbers and spoken fractions are not recognized.
//   - EvaluateFloat rounds values beyond float64 precision.
//   - Input is limited to 1 MiB per phrase.
package words2num

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jeronymous/words2num/data"
	"github.com/Jeronymous/words2num/denorm"
	"github.com/Jeronymous/words2num/locale"
)

// DefaultLocale is used by callers that have no locale preference.
const DefaultLocale = "fr"

var registry = sync.OnceValues(func() (*locale.Registry, error) {
	sub, err := fs.Sub(data.Locales, "locales")
	if err != nil {
		return nil, err
	}
	return locale.Load(sub)
})

// Registry returns the registry of built-in locales.
func Registry() (*locale.Registry, error) {
	r, err := registry()
	if err != nil {
		return nil, fmt.Errorf("words2num: loading built-in locales: %w", err)
	}
	return r, nil
}

// Evaluate returns the exact value of a spelled-out number phrase.
// Errors wrap the wordnum sentinels or locale.ErrUnsupportedLocale.
func Evaluate(text, tag string) (decimal.Decimal, error) {
	r, err := Registry()
	if err != nil {
		return decimal.Decimal{}, err
	}
	e, err := r.Resolve(tag)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return e.Evaluate(text)
}

// EvaluateFloat is like Evaluate but returns the nearest float64.
func EvaluateFloat(text, tag string) (float64, error) {
	v, err := Evaluate(text, tag)
	if err != nil {
		return 0, err
	}
	f, _ := v.Float64()
	return f, nil
}

// Denormalize replaces every number phrase in text with its digits, using
// the locale's decimal separator. Phrases that do not form a valid number
// are left as written.
func Denormalize(text, tag string) (string, error) {
	r, err := Registry()
	if err != nil {
		return "", err
	}
	e, err := r.Resolve(tag)
	if err != nil {
		return "", err
	}
	return denorm.New(e).Replace(text), nil
}

// Locales returns the primary tags of the built-in locales, sorted.
func Locales() []string {
	r, err := Registry()
	if err != nil {
		return nil
	}
	return r.Tags()
}
