package repository

import "github.com/eslsoft/prepbot/internal/entity"

// VocabStore holds the vocabulary index. Replace swaps the whole index by
// reference; readers of an earlier snapshot are unaffected.
type VocabStore interface {
	Replace(entries []entity.VocabEntry)
	Random() (entity.VocabEntry, error)
	Alternatives(word, preposition string) []entity.VocabEntry
	Snapshot() entity.VocabIndex
	Len() int
}

// SessionStore keeps at most one pending quiz session per user.
type SessionStore interface {
	Put(userID int64, session entity.QuizSession)
	// Pop removes and returns the pending session, reporting whether one
	// existed.
	Pop(userID int64) (entity.QuizSession, bool)
}

// StatsStore keeps per-user counters for the process lifetime.
type StatsStore interface {
	Get(userID int64) entity.UserStats
	// Update applies fn to the user's stats under the store's lock and
	// returns the updated snapshot.
	Update(userID int64, fn func(*entity.UserStats)) entity.UserStats
}
