// Package vocab holds the per-locale vocabulary tables used to evaluate
// spelled-out numbers.
//
// A Locale bundles everything that differs between languages: the word
// table, the compounding rules, the decimal-marker words and the
// conjunctions that are skipped between number words. Locales are parsed
// from YAML files (see ParseLocale) and validated once at load time.
//
// All types are read-only after construction and safe for concurrent use.
package vocab

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/Jeronymous/words2num/internal/fold"
)

// Entry is the meaning of one surface word.
type Entry struct {
	Value decimal.Decimal
	Class Class
}

// Table maps lowercase surface words to their entries.
type Table struct {
	words map[string]Entry

	// unaccented indexes entries by their accent-stripped form. Stripped
	// forms shared by entries of different meaning are left out.
	unaccented map[string]Entry
}

// NewTable builds a table from words. The map is copied.
func NewTable(words map[string]Entry) *Table {
	t := &Table{
		words:      make(map[string]Entry, len(words)),
		unaccented: make(map[string]Entry),
	}
	ambiguous := make(map[string]bool)
	for w, e := range words {
		t.words[w] = e
		key := fold.StripAccents(w)
		if key == w || ambiguous[key] {
			continue
		}
		if prev, ok := t.unaccented[key]; ok && !sameEntry(prev, e) {
			delete(t.unaccented, key)
			ambiguous[key] = true
			continue
		}
		t.unaccented[key] = e
	}
	// An exact word always wins over a stripped alias.
	for key := range t.unaccented {
		if _, ok := t.words[key]; ok {
			delete(t.unaccented, key)
		}
	}
	return t
}

// Lookup returns the entry for word. Words missing from the table are
// retried without their accents, so "zero" finds "zéro".
func (t *Table) Lookup(word string) (Entry, bool) {
	if e, ok := t.words[word]; ok {
		return e, true
	}
	if len(t.unaccented) == 0 {
		return Entry{}, false
	}
	e, ok := t.unaccented[fold.StripAccents(word)]
	return e, ok
}

// Len returns the number of surface words in the table.
func (t *Table) Len() int { return len(t.words) }

// Max returns the entry with the largest value.
func (t *Table) Max() (string, Entry) {
	var (
		word string
		best Entry
	)
	for w, e := range t.words {
		if word == "" || e.Value.GreaterThan(best.Value) || (e.Value.Equal(best.Value) && w < word) {
			word, best = w, e
		}
	}
	return word, best
}

func sameEntry(a, b Entry) bool {
	return a.Class == b.Class && a.Value.Equal(b.Value)
}

// PlaceValue returns the number of digits in the integer part of d, or 0
// when d is zero. Fractions below one also report 0.
func PlaceValue(d decimal.Decimal) int {
	if d.Sign() == 0 {
		return 0
	}
	n := new(big.Int).Abs(d.BigInt())
	if n.Sign() == 0 {
		return 0
	}
	return len(n.String())
}
