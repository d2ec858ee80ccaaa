package vocab

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Jeronymous/words2num/internal/fold"
)

// ErrInvalidTable is returned when a locale file is malformed or breaks one
// of the table rules.
var ErrInvalidTable = errors.New("vocab: invalid locale table")

// Locale is the complete grammar configuration of one language.
type Locale struct {
	// Tag is the primary locale tag ("fr"), Aliases the extra tags routed to
	// it ("fr_CA").
	Tag     string
	Aliases []string

	// Language selects the casing rules applied before lookup.
	Language language.Tag

	Table *Table

	// Compounds lists word sequences that spell a single numeral when
	// joined with hyphens ("soixante" "dix" -> "soixante-dix").
	Compounds [][]string

	DecimalMarkers []string
	Conjunctions   []string

	// DecimalSeparator is written between integer and fractional digits
	// when rendering a value back into running text.
	DecimalSeparator string
}

// IsDecimalMarker reports whether word is one of the locale's decimal-point words.
func (l *Locale) IsDecimalMarker(word string) bool {
	return slices.Contains(l.DecimalMarkers, word)
}

// IsConjunction reports whether word is a joining word skipped between numerals.
func (l *Locale) IsConjunction(word string) bool {
	return slices.Contains(l.Conjunctions, word)
}

// Fold composes s to NFC and lowercases it with the locale's casing rules.
func (l *Locale) Fold(s string) string {
	return fold.String(s, l.Language)
}

// localeFile is the YAML layout of a locale table.
type localeFile struct {
	Tag              string                       `yaml:"tag"`
	Language         string                       `yaml:"language"`
	Aliases          []string                     `yaml:"aliases"`
	DecimalMarkers   []string                     `yaml:"decimal_markers"`
	DecimalSeparator string                       `yaml:"decimal_separator"`
	Conjunctions     []string                     `yaml:"conjunctions"`
	Compounds        [][]string                   `yaml:"compounds"`
	Words            map[string]map[string]string `yaml:"words"`
}

// ParseLocale decodes and validates a YAML locale table.
func ParseLocale(data []byte) (*Locale, error) {
	var f localeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTable, err)
	}
	if f.Tag == "" {
		return nil, fmt.Errorf("%w: missing tag", ErrInvalidTable)
	}

	langName := f.Language
	if langName == "" {
		langName = f.Tag
	}
	lang, err := language.Parse(strings.ReplaceAll(langName, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: language %q: %s", ErrInvalidTable, f.Tag, langName, err)
	}

	words := make(map[string]Entry)
	for className, group := range f.Words {
		class, ok := ParseClass(className)
		if !ok || class == DecimalMarker {
			return nil, fmt.Errorf("%w: %s: unknown word class %q", ErrInvalidTable, f.Tag, className)
		}
		for word, raw := range group {
			if err := checkFolded(word, lang); err != nil {
				return nil, fmt.Errorf("%w: %s: %s", ErrInvalidTable, f.Tag, err)
			}
			if prev, dup := words[word]; dup {
				return nil, fmt.Errorf("%w: %s: word %q listed as both %s and %s",
					ErrInvalidTable, f.Tag, word, prev.Class, class)
			}
			v, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: value of %q: %s", ErrInvalidTable, f.Tag, word, err)
			}
			if err := checkValue(class, v); err != nil {
				return nil, fmt.Errorf("%w: %s: %q: %s", ErrInvalidTable, f.Tag, word, err)
			}
			words[word] = Entry{Value: v, Class: class}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s: no words", ErrInvalidTable, f.Tag)
	}
	if len(f.DecimalMarkers) == 0 {
		return nil, fmt.Errorf("%w: %s: no decimal markers", ErrInvalidTable, f.Tag)
	}

	for _, w := range slices.Concat(f.DecimalMarkers, f.Conjunctions) {
		if err := checkFolded(w, lang); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrInvalidTable, f.Tag, err)
		}
		if _, ok := words[w]; ok {
			return nil, fmt.Errorf("%w: %s: %q is both a number word and a marker or conjunction",
				ErrInvalidTable, f.Tag, w)
		}
	}
	if err := checkCompounds(f.Compounds, words, lang); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidTable, f.Tag, err)
	}

	sep := f.DecimalSeparator
	if sep == "" {
		sep = "."
	}

	return &Locale{
		Tag:              f.Tag,
		Aliases:          f.Aliases,
		Language:         lang,
		Table:            NewTable(words),
		Compounds:        f.Compounds,
		DecimalMarkers:   f.DecimalMarkers,
		Conjunctions:     f.Conjunctions,
		DecimalSeparator: sep,
	}, nil
}

var thousand = big.NewInt(1000)

// checkFolded rejects words that lookups could never reach: input is
// composed to NFC and lowercased before it meets the table.
func checkFolded(word string, lang language.Tag) error {
	if word == "" || word != fold.String(word, lang) {
		return fmt.Errorf("word %q must be lowercase NFC", word)
	}
	return nil
}

// checkValue enforces the value range of each class.
func checkValue(c Class, v decimal.Decimal) error {
	if !v.IsInteger() || v.Sign() < 0 {
		return fmt.Errorf("value %s is not a non-negative integer", v)
	}
	n := v.BigInt()
	var ok bool
	if c == Scale {
		ok = isPowerOfThousand(n)
	} else {
		ok = n.IsInt64() && inClassRange(c, n.Int64())
	}
	if !ok {
		return fmt.Errorf("value %s out of range for class %s", v, c)
	}
	return nil
}

func inClassRange(c Class, n int64) bool {
	switch c {
	case Zero:
		return n == 0
	case Digit:
		return n >= 1 && n <= 9
	case Teen:
		return n >= 10 && n <= 19
	case Tens:
		return n >= 20 && n <= 90 && n%10 == 0
	case Hundred:
		return n == 100
	}
	return false
}

func isPowerOfThousand(n *big.Int) bool {
	if n.Cmp(thousand) < 0 {
		return false
	}
	q, r := new(big.Int), new(big.Int)
	for n.Cmp(thousand) >= 0 {
		q.QuoRem(n, thousand, r)
		if r.Sign() != 0 {
			return false
		}
		n = new(big.Int).Set(q)
	}
	return n.Cmp(big.NewInt(1)) == 0
}

// checkCompounds verifies that every compound merges into a known word.
// Parts never contain the separator and merged words always do, so a merged
// word cannot start another match and normalization is idempotent.
func checkCompounds(compounds [][]string, words map[string]Entry, lang language.Tag) error {
	for _, parts := range compounds {
		if len(parts) < 2 {
			return fmt.Errorf("compound %v needs at least two parts", parts)
		}
		for _, p := range parts {
			if p == "" || strings.Contains(p, "-") {
				return fmt.Errorf("compound %v: invalid part %q", parts, p)
			}
			if err := checkFolded(p, lang); err != nil {
				return fmt.Errorf("compound %v: %s", parts, err)
			}
		}
		w := strings.Join(parts, "-")
		if _, ok := words[w]; !ok {
			return fmt.Errorf("compound %v: %q is not in the table", parts, w)
		}
	}
	return nil
}
