// Package denorm rewrites spelled-out numbers in running text as digits.
//
// A candidate span is a maximal run of number words, decimal markers and
// conjunctions separated only by whitespace. The run must contain a number
// word and may not start or end with a conjunction. Each span is evaluated
// by the locale's engine; spans that fail to evaluate are left untouched, so
// "un deux trois" stays as written while "deux cent cinquante" becomes 250.
//
// Punctuation ends a span: "mille, cent" becomes "1000, 100".
package denorm

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jeronymous/words2num/tokenizer"
	"github.com/Jeronymous/words2num/wordnum"
)

// Span is one rewritten phrase.
type Span struct {
	Start, End int // byte offsets in the original text
	Text       string
	Value      decimal.Decimal
}

// Replacer rewrites text for one locale. It is safe for concurrent use.
type Replacer struct {
	engine *wordnum.Engine
	sep    string
}

// New returns a Replacer that evaluates spans with e.
func New(e *wordnum.Engine) *Replacer {
	sep := e.Locale().DecimalSeparator
	if sep == "" {
		sep = "."
	}
	return &Replacer{engine: e, sep: sep}
}

// Spans returns the number phrases found in text, in order.
func (r *Replacer) Spans(text string) []Span {
	tokens := tokenizer.Tokens(text)

	var spans []Span
	for i := 0; i < len(tokens); {
		end, next, ok := r.run(tokens, i)
		if !ok {
			i = next
			continue
		}
		start := i
		s := text[tokens[start].Start:tokens[end].End]
		if v, err := r.engine.Evaluate(s); err == nil {
			spans = append(spans, Span{
				Start: tokens[start].Start,
				End:   tokens[end].End,
				Text:  s,
				Value: v,
			})
		}
		i = end + 1
	}
	return spans
}

// Replace returns text with every number phrase replaced by its digits.
func (r *Replacer) Replace(text string) string {
	spans := r.Spans(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, sp := range spans {
		b.WriteString(text[last:sp.Start])
		b.WriteString(r.Format(sp.Value))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Format renders v with the locale's decimal separator.
func (r *Replacer) Format(v decimal.Decimal) string {
	s := v.String()
	if r.sep != "." {
		s = strings.Replace(s, ".", r.sep, 1)
	}
	return s
}

// run finds the number phrase starting at tokens[i] and returns the index
// of its last token. next is where scanning resumes when no phrase starts
// at i; every token before it belongs to a run without a number word, so
// no phrase can start there either.
func (r *Replacer) run(tokens []tokenizer.Token, i int) (end, next int, ok bool) {
	if tokens[i].Type != tokenizer.Word {
		return 0, i + 1, false
	}
	switch r.engine.Kind(tokens[i].Text) {
	case wordnum.NotNumber, wordnum.ConjunctionWord:
		return 0, i + 1, false
	}

	end, next = i, len(tokens)
	hasValue := false
	for j := i; j < len(tokens); j++ {
		tok := tokens[j]
		if tok.Type == tokenizer.Space {
			continue
		}
		if tok.Type != tokenizer.Word {
			next = j
			break
		}
		kind := r.engine.Kind(tok.Text)
		if kind == wordnum.NotNumber {
			next = j
			break
		}
		if kind == wordnum.NumberWord {
			hasValue = true
		}
		if kind != wordnum.ConjunctionWord {
			end = j
		}
	}
	if !hasValue {
		return 0, max(next, i+1), false
	}
	return end, end + 1, true
}
