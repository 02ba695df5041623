package entity

import "errors"

// Domain errors for the quiz and vocabulary aggregates.
var (
	ErrEmptyVocabulary = errors.New("vocabulary index is empty")
)
