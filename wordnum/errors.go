package wordnum

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by Evaluate wraps exactly one of
// them in a *ParseError; match with errors.Is.
var (
	ErrUnknownWord            = errors.New("wordnum: unknown word")
	ErrMultipleDecimalMarkers = errors.New("wordnum: more than one decimal marker")
	ErrEmptyFractionalPart    = errors.New("wordnum: no digits after decimal marker")
	ErrInvalidTransition      = errors.New("wordnum: invalid word order")
	ErrDescendingOrder        = errors.New("wordnum: place values not strictly descending")
	ErrInvalidDecimalSequence = errors.New("wordnum: non-digit word after decimal marker")
	ErrNoValidTokens          = errors.New("wordnum: no number words")
	ErrInputTooLong           = errors.New("wordnum: input too long")
)

// ParseError describes why a phrase could not be evaluated.
type ParseError struct {
	Err error // one of the Err* sentinels

	// Word is the offending word and Offset its byte offset in the
	// lowercased, NFC-composed input. Offset is -1 when the failure is not
	// tied to a word.
	Word   string
	Offset int

	Detail string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Word != "" {
		fmt.Fprintf(&b, " %q", e.Word)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func tokenError(err error, tok token, detail string) *ParseError {
	return &ParseError{Err: err, Word: tok.text, Offset: tok.offset, Detail: detail}
}
