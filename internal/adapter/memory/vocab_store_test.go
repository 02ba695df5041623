package memory

import (
	"errors"
	"testing"

	"github.com/eslsoft/prepbot/internal/entity"
)

func vocabEntry(word, prep string) entity.VocabEntry {
	return entity.VocabEntry{Word: word, Preposition: prep, Notation: prep + " + A"}
}

func TestVocabStore_RandomOnEmpty(t *testing.T) {
	store := NewVocabStore()

	_, err := store.Random()
	if !errors.Is(err, entity.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestVocabStore_ReplaceSwapsWholesale(t *testing.T) {
	store := NewVocabStore()
	store.Replace([]entity.VocabEntry{vocabEntry("achten", "auf"), vocabEntry("denken", "an")})
	if store.Len() != 2 {
		t.Fatalf("len = %d, want 2", store.Len())
	}

	before := store.Snapshot()
	store.Replace([]entity.VocabEntry{vocabEntry("warten", "auf")})
	if store.Len() != 1 {
		t.Fatalf("len after replace = %d, want 1", store.Len())
	}
	// The earlier snapshot reference is untouched by the swap.
	if len(before) != 2 {
		t.Fatalf("old snapshot mutated, len = %d", len(before))
	}
}

func TestVocabStore_DuplicateKeysCollapse(t *testing.T) {
	store := NewVocabStore()
	first := vocabEntry("achten", "auf")
	first.Translation = "old"
	second := vocabEntry("achten", "auf")
	second.Translation = "new"
	store.Replace([]entity.VocabEntry{first, second})

	if store.Len() != 1 {
		t.Fatalf("len = %d, want 1", store.Len())
	}
	entry, err := store.Random()
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if entry.Translation != "new" {
		t.Fatalf("expected last write to win, got %q", entry.Translation)
	}
}

func TestVocabStore_Alternatives(t *testing.T) {
	store := NewVocabStore()
	store.Replace([]entity.VocabEntry{
		vocabEntry("denken", "an"),
		vocabEntry("denken", "über"),
		vocabEntry("denken", "von"),
		vocabEntry("warten", "auf"),
	})

	alts := store.Alternatives("denken", "an")
	if len(alts) != 2 {
		t.Fatalf("expected 2 alternatives, got %v", alts)
	}
	// Ordered by preposition for stable rendering.
	if alts[0].Preposition != "von" || alts[1].Preposition != "über" {
		t.Fatalf("unexpected order: %v", alts)
	}

	if alts := store.Alternatives("warten", "auf"); len(alts) != 0 {
		t.Fatalf("expected no alternatives, got %v", alts)
	}
}
