// Package model provides the fixture cell grammar and schema vocabularies for csvfixture
package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedCell is returned when a cell claims a sigil form it does not satisfy
	ErrMalformedCell = errors.New("malformed cell")

	// ErrUnrecognizedToken is returned when a token is outside a closed vocabulary
	ErrUnrecognizedToken = errors.New("unrecognized token")

	// ErrMissingColumn is returned when a row has fewer columns than an operation reads
	ErrMissingColumn = errors.New("missing column")
)

// VocabularyError names the offending token and the vocabulary it failed to match.
type VocabularyError struct {
	// Vocabulary is the human readable name of the vocabulary, e.g. "data type"
	Vocabulary string
	// Token is the raw token as read from the fixture
	Token string
	// Expected lists the accepted tokens
	Expected []string
}

// Error implements error.
func (e *VocabularyError) Error() string {
	return fmt.Sprintf("unrecognized %s %q (expected one of: %s)",
		e.Vocabulary, e.Token, strings.Join(e.Expected, ", "))
}

// Unwrap makes errors.Is(err, ErrUnrecognizedToken) hold.
func (e *VocabularyError) Unwrap() error {
	return ErrUnrecognizedToken
}
