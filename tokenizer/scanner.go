package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Whitespace runs
//   - Numbers (digits with inner '.' or ',' followed by a digit)
//   - Words (letters, single hyphens and apostrophes between letters)
//   - Punctuation runs of the same rune
//   - Symbol for anything else
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		if isDigitByte(s[i]) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsPunct(r) {
			start := i
			i += size
			// "--" and ",," stay one token.
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if nr != r {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a digit run starting at pos. A '.' or ',' is kept inside
// the number only when a digit follows it, so "3,14" is one token and "3,"
// is a number followed by punctuation.
func scanNumber(s string, pos int) Token {
	i := pos
	for i < len(s) {
		if isDigitByte(s[i]) {
			i++
			continue
		}
		if (s[i] == '.' || s[i] == ',') && i+1 < len(s) && isDigitByte(s[i+1]) {
			i++
			continue
		}
		break
	}
	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at pos.
// A word is a run of letters and combining marks, extended across a single
// hyphen (U+002D) followed by a letter, and across an apostrophe (U+0027,
// U+2019, U+02BC) between letters.
func scanWord(s string, pos int) Token {
	i := consumeLetters(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])

		if r == '-' && unicode.IsLetter(nr) {
			i = consumeLetters(s, next)
			continue
		}
		if isApostrophe(r) && unicode.IsLetter(nr) {
			i = consumeLetters(s, next)
			continue
		}
		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeLetters consumes letters and the combining marks attached to them.
func consumeLetters(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			break
		}
		pos += size
	}
	return pos
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
