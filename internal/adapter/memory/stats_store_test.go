package memory

import (
	"testing"

	"github.com/eslsoft/prepbot/internal/entity"
)

func TestStatsStore_CreatedOnFirstAccess(t *testing.T) {
	store := NewStatsStore()

	stats := store.Get(42)
	if stats.QuestionsAsked != 0 || stats.BestStreak != 0 {
		t.Fatalf("fresh stats should be zero: %+v", stats)
	}
}

func TestStatsStore_UpdateReturnsSnapshot(t *testing.T) {
	store := NewStatsStore()

	updated := store.Update(42, func(s *entity.UserStats) {
		s.QuestionsAsked++
		s.CorrectAnswers++
	})
	if updated.QuestionsAsked != 1 || updated.CorrectAnswers != 1 {
		t.Fatalf("unexpected snapshot: %+v", updated)
	}
	if got := store.Get(42); got != updated {
		t.Fatalf("stored stats differ from snapshot: %+v vs %+v", got, updated)
	}
	// Other users are untouched.
	if got := store.Get(43); got.QuestionsAsked != 0 {
		t.Fatalf("unexpected stats for other user: %+v", got)
	}
}

func TestSessionStore_PopConsumes(t *testing.T) {
	store := NewSessionStore()
	store.Put(1, entity.QuizSession{Word: "achten"})

	session, ok := store.Pop(1)
	if !ok || session.Word != "achten" {
		t.Fatalf("pop = (%+v, %v)", session, ok)
	}
	if _, ok := store.Pop(1); ok {
		t.Fatal("second pop should find nothing")
	}
}

func TestSessionStore_PutOverwrites(t *testing.T) {
	store := NewSessionStore()
	store.Put(1, entity.QuizSession{Word: "achten"})
	store.Put(1, entity.QuizSession{Word: "denken"})

	session, ok := store.Pop(1)
	if !ok || session.Word != "denken" {
		t.Fatalf("expected the newer session, got (%+v, %v)", session, ok)
	}
}
