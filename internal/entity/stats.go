package entity

// UserStats tracks one user's running quiz accuracy for the process
// lifetime. BestStreak is never below CurrentStreak.
type UserStats struct {
	QuestionsAsked int
	CorrectAnswers int
	CurrentStreak  int
	BestStreak     int
}

// Accuracy returns the percentage of correct answers. A user with no
// questions asked reports 0, not NaN.
func (s UserStats) Accuracy() float64 {
	asked := s.QuestionsAsked
	if asked < 1 {
		asked = 1
	}
	return float64(s.CorrectAnswers) / float64(asked) * 100
}
