package memory

import (
	"sync"

	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/internal/repository"
)

var _ repository.StatsStore = (*StatsStore)(nil)

// StatsStore keeps per-user counters, created implicitly on first access.
type StatsStore struct {
	mu    sync.Mutex
	stats map[int64]entity.UserStats
}

func NewStatsStore() *StatsStore {
	return &StatsStore{stats: make(map[int64]entity.UserStats)}
}

func (s *StatsStore) Get(userID int64) entity.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats[userID]
}

// Update applies fn under the store lock and returns the new snapshot.
func (s *StatsStore) Update(userID int64, fn func(*entity.UserStats)) entity.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats[userID]
	fn(&stats)
	s.stats[userID] = stats
	return stats
}
