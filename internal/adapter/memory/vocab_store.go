// Package memory implements the repository stores as process-lifetime
// in-memory maps. Nothing here persists across restarts.
package memory

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/internal/repository"
)

var _ repository.VocabStore = (*VocabStore)(nil)

// VocabStore holds the vocabulary index behind a swappable map reference.
type VocabStore struct {
	mu    sync.RWMutex
	index entity.VocabIndex
}

func NewVocabStore() *VocabStore {
	return &VocabStore{index: entity.VocabIndex{}}
}

// Replace rebuilds the index wholesale and swaps it in by reference.
// In-flight readers keep the snapshot they already took.
func (s *VocabStore) Replace(entries []entity.VocabEntry) {
	index := make(entity.VocabIndex, len(entries))
	for _, entry := range entries {
		index[entry.Key()] = entry
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
}

func (s *VocabStore) snapshot() entity.VocabIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Snapshot returns the current index reference. Callers must not mutate it.
func (s *VocabStore) Snapshot() entity.VocabIndex {
	return s.snapshot()
}

// Random picks one entry uniformly from the whole index.
func (s *VocabStore) Random() (entity.VocabEntry, error) {
	index := s.snapshot()
	if len(index) == 0 {
		return entity.VocabEntry{}, entity.ErrEmptyVocabulary
	}

	target := rand.Intn(len(index))
	i := 0
	for _, entry := range index {
		if i == target {
			return entry, nil
		}
		i++
	}
	// Unreachable: the loop always hits target.
	return entity.VocabEntry{}, entity.ErrEmptyVocabulary
}

// Alternatives returns every entry sharing the word but governing a
// different preposition, ordered by preposition for stable rendering.
func (s *VocabStore) Alternatives(word, preposition string) []entity.VocabEntry {
	index := s.snapshot()

	var out []entity.VocabEntry
	for _, entry := range index {
		if entry.Word == word && entry.Preposition != preposition {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Preposition < out[j].Preposition })
	return out
}

func (s *VocabStore) Len() int {
	return len(s.snapshot())
}
