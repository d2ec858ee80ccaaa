// Package tokenizer splits text into word, number, punctuation, space and
// symbol tokens with byte offsets.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string, so callers
// can rewrite selected spans in place.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"fmt"
	"strings"
)

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters, possibly joined by single hyphens or apostrophes
	Number                       // Digits, with inner '.' or ',' separators
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) - etc.
	Space                        // Contiguous whitespace
	Symbol                       // Everything else: emoji, math symbols, ...
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("cent")[0:4].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens. Hyphenated words ("quatre-vingt-dix") are a
// single Word token; use Parts to split them.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Parts splits a hyphenated Word token into one token per hyphen-separated
// part, keeping byte offsets. Other tokens are returned unchanged.
func Parts(t Token) []Token {
	if t.Type != Word || !strings.Contains(t.Text, "-") {
		return []Token{t}
	}
	parts := make([]Token, 0, strings.Count(t.Text, "-")+1)
	start := t.Start
	for p := range strings.SplitSeq(t.Text, "-") {
		parts = append(parts, Token{Text: p, Start: start, End: start + len(p), Type: Word})
		start += len(p) + 1
	}
	return parts
}
