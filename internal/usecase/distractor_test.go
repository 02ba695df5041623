package usecase

import (
	"testing"

	"github.com/samber/lo"
)

func TestDistractors_NeverContainsCorrect(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := Distractors("auf")
		if len(got) != 3 {
			t.Fatalf("expected 3 distractors, got %d", len(got))
		}
		if lo.Contains(got, "auf") {
			t.Fatalf("distractors contain the correct preposition: %v", got)
		}
		if len(lo.Uniq(got)) != len(got) {
			t.Fatalf("distractors not unique: %v", got)
		}
	}
}

func TestDistractors_UnknownCorrectStillSamplesThree(t *testing.T) {
	got := Distractors("trotz")
	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %d", len(got))
	}
}

func TestDistractorPools_CollectivelyNonTrivial(t *testing.T) {
	all := lo.Uniq(lo.Flatten([][]string{accusativePreps, dativePreps, twoWayPreps}))
	if len(all) < 10 {
		t.Fatalf("candidate pools too small: %d distinct prepositions", len(all))
	}
}
