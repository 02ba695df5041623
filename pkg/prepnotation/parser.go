// Package prepnotation parses the compact "preposition + case-letter"
// notation used by the vocabulary source, e.g. "auf + A" or "über+D".
package prepnotation

import (
	"errors"
	"strings"
)

// Case is the grammatical case governed by a preposition.
type Case string

const (
	CaseAccusative Case = "accusative"
	CaseDative     Case = "dative"
	CaseGenitive   Case = "genitive"
	CaseUnknown    Case = "unknown"
)

const separator = " + "

// ErrInvalidNotation is returned when the input cannot be split into a
// preposition and a case code.
var ErrInvalidNotation = errors.New("invalid preposition notation")

// Parsed is the structured form of a notation string.
type Parsed struct {
	Preposition string
	Case        Case
}

// ParseCaseCode maps a single-letter case code to a Case. Codes other than
// A, D and G map to CaseUnknown; that is not a parse failure.
func ParseCaseCode(code string) Case {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "A":
		return CaseAccusative
	case "D":
		return CaseDative
	case "G":
		return CaseGenitive
	default:
		return CaseUnknown
	}
}

// Parse splits a notation string into its preposition and case. Formatting
// variance is tolerated: a bare "+" separator gets spaces inserted and
// repeated whitespace is collapsed, so "über+A" behaves like "über + A".
// The preposition is taken verbatim; the case code is case-insensitive.
func Parse(notation string) (*Parsed, error) {
	normalized := strings.ReplaceAll(notation, "+", separator)
	normalized = strings.Join(strings.Fields(normalized), " ")
	if !strings.Contains(normalized, separator) {
		return nil, ErrInvalidNotation
	}

	parts := strings.Split(normalized, separator)
	if len(parts) != 2 {
		return nil, ErrInvalidNotation
	}

	prep := strings.TrimSpace(parts[0])
	if prep == "" {
		return nil, ErrInvalidNotation
	}

	return &Parsed{Preposition: prep, Case: ParseCaseCode(parts[1])}, nil
}
