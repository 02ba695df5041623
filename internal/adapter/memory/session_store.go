package memory

import (
	"sync"

	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/internal/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore keeps the single pending quiz session per user.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]entity.QuizSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]entity.QuizSession)}
}

// Put installs the session, replacing any pending one for the user.
func (s *SessionStore) Put(userID int64, session entity.QuizSession) {
	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()
}

// Pop removes and returns the pending session.
func (s *SessionStore) Pop(userID int64) (entity.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if ok {
		delete(s.sessions, userID)
	}
	return session, ok
}
