// Package fold prepares words for vocabulary lookup: Unicode composition,
// language-aware lowercasing and accent stripping.
//
// Turkic languages (az, tr) lowercase I to dotless ı and İ to i; every other
// language uses the default Unicode mapping.
//
// All functions are safe for concurrent use.
package fold

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String returns s composed to NFC and lowercased with the casing rules of lang.
func String(s string, lang language.Tag) string {
	if s == "" {
		return s
	}
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Lower(lang).String(s)
}

// StripAccents removes combining marks from s: "zéro" becomes "zero".
// Letters that are distinct base letters, such as ı or ə, are kept.
func StripAccents(s string) string {
	if isASCII(s) {
		return s
	}
	// transform.Chain is stateful, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
