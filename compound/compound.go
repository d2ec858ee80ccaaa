// Package compound merges runs of words that together spell a single
// numeral, such as "soixante" "dix" for soixante-dix (70) or "quatre"
// "vingt" "dix" for quatre-vingt-dix (90).
//
// Rules are applied left to right without overlap; at each position the
// longest matching rule wins. A part that appears without the rest of its
// rule is left alone. As long as no merged word is itself a part of some
// rule, Apply is idempotent.
//
// A Normalizer is read-only after New and safe for concurrent use.
package compound

import (
	"slices"
	"strings"
)

// Separator joins the parts of a compound into its surface form.
const Separator = "-"

// Rule is an ordered sequence of words spelling one numeral.
type Rule struct {
	Parts []string
}

// Word returns the merged surface form of the rule.
func (r Rule) Word() string {
	return strings.Join(r.Parts, Separator)
}

// Normalizer applies a fixed set of rules.
type Normalizer struct {
	// byFirst indexes rules by their first part, longest rule first.
	byFirst map[string][]Rule
}

// New returns a Normalizer for rules. Rules with fewer than two parts are
// ignored.
func New(rules []Rule) *Normalizer {
	n := &Normalizer{byFirst: make(map[string][]Rule)}
	for _, r := range rules {
		if len(r.Parts) < 2 {
			continue
		}
		r.Parts = slices.Clone(r.Parts)
		n.byFirst[r.Parts[0]] = append(n.byFirst[r.Parts[0]], r)
	}
	for _, rs := range n.byFirst {
		slices.SortStableFunc(rs, func(a, b Rule) int {
			return len(b.Parts) - len(a.Parts)
		})
	}
	return n
}

// FromParts builds rules from plain part lists, as stored in locale tables.
func FromParts(parts [][]string) []Rule {
	rules := make([]Rule, len(parts))
	for i, p := range parts {
		rules[i] = Rule{Parts: p}
	}
	return rules
}

// Apply merges compound runs in words. It returns the merged words and, for
// each of them, the index in words of its first part. The input slice is not
// modified.
func (n *Normalizer) Apply(words []string) (merged []string, origin []int) {
	merged = make([]string, 0, len(words))
	origin = make([]int, 0, len(words))

	for i := 0; i < len(words); {
		if r, ok := n.match(words[i:]); ok {
			merged = append(merged, r.Word())
			origin = append(origin, i)
			i += len(r.Parts)
			continue
		}
		merged = append(merged, words[i])
		origin = append(origin, i)
		i++
	}
	return merged, origin
}

// match returns the longest rule that prefixes words.
func (n *Normalizer) match(words []string) (Rule, bool) {
	for _, r := range n.byFirst[words[0]] {
		if len(r.Parts) <= len(words) && slices.Equal(r.Parts, words[:len(r.Parts)]) {
			return r, true
		}
	}
	return Rule{}, false
}
