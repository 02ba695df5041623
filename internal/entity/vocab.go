package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/eslsoft/prepbot/pkg/prepnotation"
)

// Difficulty classifies how hard a vocabulary entry is. It is carried as a
// data attribute and deliberately not used for quiz selection.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// VocabEntry is one word + preposition pairing from the vocabulary source.
type VocabEntry struct {
	Word        string            `json:"word"`
	Preposition string            `json:"preposition"`
	Case        prepnotation.Case `json:"case"`
	Example     string            `json:"example"`
	Distractors []string          `json:"distractors,omitempty"`
	Difficulty  Difficulty        `json:"difficulty"`
	Translation string            `json:"translation,omitempty"`
	Notation    string            `json:"notation"`
	RecordID    string            `json:"record_id,omitempty"`
}

// Key is the composite index key. Entries sharing a key overwrite each
// other, last write wins.
func (e *VocabEntry) Key() string {
	return e.Word + "_" + e.Preposition
}

// VocabIndex is the in-memory vocabulary, keyed by VocabEntry.Key. It is
// rebuilt wholesale on every load; never mutated incrementally.
type VocabIndex map[string]VocabEntry

// LoadReport summarizes one load of the vocabulary source.
type LoadReport struct {
	Total       int
	Accepted    int
	Skipped     int
	FetchFailed bool
}

// ClassifyDifficulty derives the difficulty tier for a word: reflexive
// verbs ("sich ...") and long words are intermediate, anything with an
// umlaut is advanced.
func ClassifyDifficulty(word string) Difficulty {
	difficulty := DifficultyBeginner
	if strings.HasPrefix(word, "sich ") || utf8.RuneCountInString(word) > 8 {
		difficulty = DifficultyIntermediate
	}
	if strings.ContainsAny(word, "äöü") {
		difficulty = DifficultyAdvanced
	}
	return difficulty
}
