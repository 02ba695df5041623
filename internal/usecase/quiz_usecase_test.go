package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/prepbot/internal/adapter/memory"
	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/pkg/prepnotation"
)

type stubLoader struct {
	entries []entity.VocabEntry
	report  entity.LoadReport
}

func (s *stubLoader) Load(ctx context.Context) ([]entity.VocabEntry, entity.LoadReport) {
	return s.entries, s.report
}

func entry(word, prep, notation, example string) entity.VocabEntry {
	return entity.VocabEntry{
		Word:        word,
		Preposition: prep,
		Case:        prepnotation.CaseAccusative,
		Example:     example,
		Distractors: []string{"mit", "von", "zu"},
		Difficulty:  entity.DifficultyBeginner,
		Notation:    notation,
	}
}

func newQuizForTest(entries ...entity.VocabEntry) QuizUsecase {
	vocab := memory.NewVocabStore()
	vocab.Replace(entries)
	return NewQuizUsecase(&stubLoader{}, vocab, memory.NewSessionStore(), memory.NewStatsStore())
}

func TestStartQuiz_EmptyVocabulary(t *testing.T) {
	quiz := newQuizForTest()

	_, err := quiz.StartQuiz(context.Background(), 1)
	if !errors.Is(err, entity.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestStartQuiz_OptionsContainCorrectAndDistractors(t *testing.T) {
	quiz := newQuizForTest(entry("achten", "auf", "auf + A", "Ich achte auf etwas."))

	session, err := quiz.StartQuiz(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(session.Options) != 4 {
		t.Fatalf("expected 4 options, got %v", session.Options)
	}
	found := false
	for _, opt := range session.Options {
		if opt == "auf" {
			found = true
		}
	}
	if !found {
		t.Fatalf("options missing correct preposition: %v", session.Options)
	}
}

func TestSubmitAnswer_NoActiveSession(t *testing.T) {
	quiz := newQuizForTest(entry("achten", "auf", "auf + A", ""))

	result, err := quiz.SubmitAnswer(context.Background(), 1, "auf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Outcome != entity.GradeNoSession {
		t.Fatalf("outcome = %q, want no_session", result.Outcome)
	}
	if result.Stats.QuestionsAsked != 0 {
		t.Fatalf("no-session submission must not mutate stats: %+v", result.Stats)
	}
}

func TestSubmitAnswer_CorrectUpdatesStreak(t *testing.T) {
	quiz := newQuizForTest(entry("achten", "auf", "auf + A", "Ich achte auf etwas."))
	ctx := context.Background()

	if _, err := quiz.StartQuiz(ctx, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	result, err := quiz.SubmitAnswer(ctx, 1, "auf")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != entity.GradeCorrect {
		t.Fatalf("outcome = %q", result.Outcome)
	}
	stats := result.Stats
	if stats.QuestionsAsked != 1 || stats.CorrectAnswers != 1 || stats.CurrentStreak != 1 || stats.BestStreak != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSubmitAnswer_IncorrectResetsStreak(t *testing.T) {
	quiz := newQuizForTest(entry("achten", "auf", "auf + A", ""))
	ctx := context.Background()

	// Build a streak of two, then miss.
	for i := 0; i < 2; i++ {
		if _, err := quiz.StartQuiz(ctx, 1); err != nil {
			t.Fatalf("start: %v", err)
		}
		if _, err := quiz.SubmitAnswer(ctx, 1, "auf"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if _, err := quiz.StartQuiz(ctx, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	result, err := quiz.SubmitAnswer(ctx, 1, "gegen")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != entity.GradeIncorrect {
		t.Fatalf("outcome = %q", result.Outcome)
	}
	stats := result.Stats
	if stats.CurrentStreak != 0 {
		t.Fatalf("current streak must reset to 0, got %d", stats.CurrentStreak)
	}
	if stats.BestStreak != 2 {
		t.Fatalf("best streak must survive the miss, got %d", stats.BestStreak)
	}
	if stats.QuestionsAsked != 3 || stats.CorrectAnswers != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSubmitAnswer_ValidAlternativeAccepted(t *testing.T) {
	asked := entry("denken", "an", "an + A", "Ich denke an dich.")
	alternative := entry("denken", "über", "über + A", "Ich denke über das Problem nach.")
	vocab := memory.NewVocabStore()
	vocab.Replace([]entity.VocabEntry{asked, alternative})
	sessions := memory.NewSessionStore()
	stats := memory.NewStatsStore()
	quiz := NewQuizUsecase(&stubLoader{}, vocab, sessions, stats)
	ctx := context.Background()

	// Install the asked entry directly so the selection is deterministic.
	sessions.Put(1, entity.QuizSession{
		Word:        asked.Word,
		Preposition: asked.Preposition,
		Case:        asked.Case,
		Example:     asked.Example,
		Notation:    asked.Notation,
	})

	result, err := quiz.SubmitAnswer(ctx, 1, "über")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != entity.GradeAlternative {
		t.Fatalf("outcome = %q, want alternative", result.Outcome)
	}
	if result.Alternative == nil || result.Alternative.Example != alternative.Example {
		t.Fatalf("result must carry the matched alternative entry: %+v", result.Alternative)
	}
	if result.Session.Example != asked.Example {
		t.Fatalf("result must keep the asked entry's example: %+v", result.Session)
	}
	if result.Stats.CorrectAnswers != 1 || result.Stats.CurrentStreak != 1 {
		t.Fatalf("alternative must count as correct: %+v", result.Stats)
	}
}

func TestSubmitAnswer_SessionSingleUse(t *testing.T) {
	quiz := newQuizForTest(entry("achten", "auf", "auf + A", ""))
	ctx := context.Background()

	if _, err := quiz.StartQuiz(ctx, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := quiz.SubmitAnswer(ctx, 1, "auf"); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second, err := quiz.SubmitAnswer(ctx, 1, "mit")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Outcome != entity.GradeNoSession {
		t.Fatalf("outcome = %q, want no_session", second.Outcome)
	}
	if second.Stats.QuestionsAsked != 1 {
		t.Fatalf("second submission must not change stats: %+v", second.Stats)
	}
}

func TestStats_AccuracyScenario(t *testing.T) {
	quiz := newQuizForTest(entry("achten", "auf", "auf + A", ""))
	ctx := context.Background()

	answers := []string{"auf", "mit", "auf", "auf"}
	for _, answer := range answers {
		if _, err := quiz.StartQuiz(ctx, 7); err != nil {
			t.Fatalf("start: %v", err)
		}
		if _, err := quiz.SubmitAnswer(ctx, 7, answer); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	stats, _ := quiz.Stats(ctx, 7)
	if stats.QuestionsAsked != 4 || stats.CorrectAnswers != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if got := stats.Accuracy(); got != 75.0 {
		t.Fatalf("accuracy = %v, want 75.0", got)
	}
}

func TestRefresh_SwapsIndexWithoutTouchingSessions(t *testing.T) {
	old := entry("achten", "auf", "auf + A", "old example")
	vocab := memory.NewVocabStore()
	vocab.Replace([]entity.VocabEntry{old})
	sessions := memory.NewSessionStore()
	loader := &stubLoader{
		entries: []entity.VocabEntry{entry("warten", "auf", "auf + A", "new example")},
		report:  entity.LoadReport{Total: 1, Accepted: 1},
	}
	quiz := NewQuizUsecase(loader, vocab, sessions, memory.NewStatsStore())
	ctx := context.Background()

	session, err := quiz.StartQuiz(ctx, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	report := quiz.Refresh(ctx)
	if report.Accepted != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if _, size := quiz.Stats(ctx, 1); size != 1 {
		t.Fatalf("vocab size after refresh = %d", size)
	}

	// The pending session is a snapshot of the pre-refresh entry.
	result, err := quiz.SubmitAnswer(ctx, 1, session.Preposition)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != entity.GradeCorrect {
		t.Fatalf("outcome = %q", result.Outcome)
	}
	if result.Session.Example != "old example" {
		t.Fatalf("session must keep its snapshot, got %q", result.Session.Example)
	}
}
