package wordnum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Jeronymous/words2num/tokenizer"
	"github.com/Jeronymous/words2num/vocab"
)

// maxInputBytes caps the text accepted by Evaluate.
const maxInputBytes = 1 << 20 // 1 MiB

// minScalePlace is the place value of "hundred". Only hundreds and larger
// can multiply a whole preceding clause.
const minScalePlace = 3

// token is a classified word.
type token struct {
	text   string
	entry  vocab.Entry
	marker bool // decimal marker; entry is unset
	place  int
	offset int
}

// tokenized is a phrase split into the parts evaluated separately.
type tokenized struct {
	integer  []token
	fraction []token
	scale    []token
}

func (e *Engine) tokenize(text string) (tokenized, error) {
	if len(text) > maxInputBytes {
		return tokenized{}, &ParseError{
			Err:    ErrInputTooLong,
			Offset: -1,
			Detail: fmt.Sprintf("%d bytes, limit %d", len(text), maxInputBytes),
		}
	}

	words, offsets, err := e.split(e.locale.Fold(text))
	if err != nil {
		return tokenized{}, err
	}

	merged, origin := e.compound.Apply(words)
	tokens := make([]token, len(merged))
	for i, w := range merged {
		tok, ok := e.classify(w)
		if !ok {
			return tokenized{}, &ParseError{Err: ErrUnknownWord, Word: w, Offset: offsets[origin[i]]}
		}
		tok.offset = offsets[origin[i]]
		tokens[i] = tok
	}

	rest, scale, err := stripScale(tokens)
	if err != nil {
		return tokenized{}, err
	}
	integer, fraction, err := splitDecimal(rest)
	if err != nil {
		return tokenized{}, err
	}
	if len(integer) == 0 && len(fraction) == 0 {
		return tokenized{}, &ParseError{Err: ErrNoValidTokens, Offset: -1, Detail: fmt.Sprintf("in %q", text)}
	}
	return tokenized{integer: integer, fraction: fraction, scale: scale}, nil
}

// split breaks folded text into words. Whitespace, commas and hyphens
// separate words and conjunctions are dropped; anything else that is not a
// word is reported as unknown.
func (e *Engine) split(s string) (words []string, offsets []int, err error) {
	for _, tok := range tokenizer.Tokens(s) {
		switch tok.Type {
		case tokenizer.Space:
			continue
		case tokenizer.Punctuation:
			if strings.Trim(tok.Text, ",-") == "" {
				continue
			}
		case tokenizer.Word:
			for _, p := range tokenizer.Parts(tok) {
				if e.locale.IsConjunction(p.Text) {
					continue
				}
				words = append(words, p.Text)
				offsets = append(offsets, p.Start)
			}
			continue
		}
		return nil, nil, &ParseError{Err: ErrUnknownWord, Word: tok.Text, Offset: tok.Start}
	}
	return words, offsets, nil
}

func (e *Engine) classify(word string) (token, bool) {
	if e.locale.IsDecimalMarker(word) {
		return token{text: word, marker: true}, true
	}
	entry, ok := e.locale.Table.Lookup(word)
	if !ok {
		return token{}, false
	}
	return token{text: word, entry: entry, place: vocab.PlaceValue(entry.Value)}, true
}

// stripScale peels the trailing multiplier words off tokens. A token is
// peeled while it has the largest place value of what remains, more than one
// token remains, and that place value is at least a hundred's. The peeled
// words must grow strictly and the first one must exceed everything before it,
// otherwise "mille mille" would read as a million.
func stripScale(tokens []token) (rest, scale []token, err error) {
	// prefixMax[i] is the largest place value in tokens[:i+1].
	prefixMax := make([]int, len(tokens))
	for i, tok := range tokens {
		prefixMax[i] = tok.place
		if i > 0 {
			prefixMax[i] = max(prefixMax[i], prefixMax[i-1])
		}
	}

	n := len(tokens)
	for n > 1 && tokens[n-1].place == prefixMax[n-1] && prefixMax[n-1] >= minScalePlace {
		n--
	}
	if n == len(tokens) {
		return tokens, nil, nil
	}

	rest, scale = tokens[:n], tokens[n:]
	for i := 1; i < len(scale); i++ {
		if scale[i].place <= scale[i-1].place {
			return nil, nil, tokenError(ErrDescendingOrder, scale[i],
				fmt.Sprintf("%q cannot follow %q", scale[i].text, scale[i-1].text))
		}
	}
	if scale[0].place <= prefixMax[n-1] {
		return nil, nil, tokenError(ErrDescendingOrder, scale[0],
			fmt.Sprintf("%q cannot multiply a clause that already reaches its place value", scale[0].text))
	}
	return rest, slices.Clip(scale), nil
}

// splitDecimal splits tokens at the decimal marker.
func splitDecimal(tokens []token) (integer, fraction []token, err error) {
	at := slices.IndexFunc(tokens, func(t token) bool { return t.marker })
	if at < 0 {
		return tokens, nil, nil
	}
	integer, fraction = tokens[:at], tokens[at+1:]
	if i := slices.IndexFunc(fraction, func(t token) bool { return t.marker }); i >= 0 {
		return nil, nil, tokenError(ErrMultipleDecimalMarkers, fraction[i], "")
	}
	if len(fraction) == 0 {
		return nil, nil, tokenError(ErrEmptyFractionalPart, tokens[at], "")
	}
	return integer, fraction, nil
}
