package usecase

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/internal/repository"
)

// QuizUsecase is the quiz session manager and answer grader.
type QuizUsecase interface {
	// StartQuiz selects a random vocabulary entry and installs it as the
	// user's pending session, replacing any previous one.
	StartQuiz(ctx context.Context, userID int64) (*entity.QuizSession, error)
	// SubmitAnswer grades the pending session against the chosen
	// preposition. The session is consumed exactly once; a submission with
	// no pending session returns a GradeNoSession result and mutates no
	// statistics.
	SubmitAnswer(ctx context.Context, userID int64, preposition string) (*entity.GradeResult, error)
	// Stats returns the user's counters and the current vocabulary size.
	Stats(ctx context.Context, userID int64) (entity.UserStats, int)
	// Refresh reloads the vocabulary and swaps the index wholesale.
	// Pending sessions hold snapshots and are unaffected.
	Refresh(ctx context.Context) entity.LoadReport
}

type quizUsecase struct {
	loader   VocabLoader
	vocab    repository.VocabStore
	sessions repository.SessionStore
	stats    repository.StatsStore

	users userLocks
}

func NewQuizUsecase(loader VocabLoader, vocab repository.VocabStore, sessions repository.SessionStore, stats repository.StatsStore) QuizUsecase {
	return &quizUsecase{
		loader:   loader,
		vocab:    vocab,
		sessions: sessions,
		stats:    stats,
	}
}

func (u *quizUsecase) StartQuiz(ctx context.Context, userID int64) (*entity.QuizSession, error) {
	defer u.users.lock(userID)()

	entry, err := u.vocab.Random()
	if err != nil {
		return nil, err
	}

	options := append([]string{entry.Preposition}, entry.Distractors...)
	session := entity.QuizSession{
		Word:        entry.Word,
		Preposition: entry.Preposition,
		Case:        entry.Case,
		Example:     entry.Example,
		Notation:    entry.Notation,
		Translation: entry.Translation,
		Options:     lo.Shuffle(options),
	}
	u.sessions.Put(userID, session)
	return &session, nil
}

func (u *quizUsecase) SubmitAnswer(ctx context.Context, userID int64, preposition string) (*entity.GradeResult, error) {
	defer u.users.lock(userID)()

	session, ok := u.sessions.Pop(userID)
	if !ok {
		return &entity.GradeResult{
			Outcome: entity.GradeNoSession,
			Chosen:  preposition,
			Stats:   u.stats.Get(userID),
		}, nil
	}

	alternatives := u.vocab.Alternatives(session.Word, session.Preposition)
	var matched *entity.VocabEntry
	for i := range alternatives {
		if alternatives[i].Preposition == preposition {
			matched = &alternatives[i]
			break
		}
	}

	outcome := entity.GradeIncorrect
	switch {
	case preposition == session.Preposition:
		outcome = entity.GradeCorrect
	case matched != nil:
		outcome = entity.GradeAlternative
	}

	updated := u.stats.Update(userID, func(s *entity.UserStats) {
		s.QuestionsAsked++
		if outcome == entity.GradeIncorrect {
			s.CurrentStreak = 0
			return
		}
		s.CorrectAnswers++
		s.CurrentStreak++
		if s.CurrentStreak > s.BestStreak {
			s.BestStreak = s.CurrentStreak
		}
	})

	return &entity.GradeResult{
		Outcome:         outcome,
		Chosen:          preposition,
		Session:         session,
		Alternative:     matched,
		HasAlternatives: len(alternatives) > 0,
		Stats:           updated,
	}, nil
}

func (u *quizUsecase) Stats(ctx context.Context, userID int64) (entity.UserStats, int) {
	return u.stats.Get(userID), u.vocab.Len()
}

func (u *quizUsecase) Refresh(ctx context.Context) entity.LoadReport {
	entries, report := u.loader.Load(ctx)
	u.vocab.Replace(entries)
	return report
}

// userLocks serializes quiz operations per user so concurrent transport
// dispatch cannot interleave session creation and grading for one user.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (l *userLocks) lock(userID int64) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[int64]*sync.Mutex)
	}
	userMu, ok := l.locks[userID]
	if !ok {
		userMu = &sync.Mutex{}
		l.locks[userID] = userMu
	}
	l.mu.Unlock()

	userMu.Lock()
	return userMu.Unlock
}
