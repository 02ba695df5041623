package entity

import "github.com/eslsoft/prepbot/pkg/prepnotation"

// QuizSession is the single pending quiz item for a user. Fields are a
// snapshot copied from the selected VocabEntry at selection time, so a
// vocabulary refresh never mutates a pending session.
type QuizSession struct {
	Word        string
	Preposition string
	Case        prepnotation.Case
	Example     string
	Notation    string
	Translation string
	Options     []string
}

// GradeOutcome tags the result of grading a submitted answer.
type GradeOutcome string

const (
	// GradeCorrect: the chosen preposition matches the asked entry.
	GradeCorrect GradeOutcome = "correct"
	// GradeAlternative: the chosen preposition is valid for the same word
	// through a different vocabulary entry.
	GradeAlternative GradeOutcome = "alternative"
	GradeIncorrect   GradeOutcome = "incorrect"
	// GradeNoSession: the user submitted an answer with no pending quiz.
	GradeNoSession GradeOutcome = "no_session"
)

// GradeResult carries everything the chat layer needs to render an answer.
type GradeResult struct {
	Outcome GradeOutcome
	Chosen  string
	Session QuizSession

	// Alternative is the entry matching the chosen preposition when the
	// outcome is GradeAlternative.
	Alternative *VocabEntry
	// HasAlternatives reports whether the asked word governs other
	// prepositions at all, used as a hint on incorrect answers.
	HasAlternatives bool

	Stats UserStats
}
