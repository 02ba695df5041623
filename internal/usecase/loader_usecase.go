package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/internal/repository"
	"github.com/eslsoft/prepbot/pkg/prepnotation"
)

// Field names expected on source records.
const (
	fieldWord        = "Word"
	fieldPreposition = "Preposition"
	fieldTranslation = "English Translation"
	fieldExample     = "Example DE"
)

// VocabLoader turns raw source records into validated vocabulary entries.
type VocabLoader interface {
	// Load fetches all records and normalizes them. A fetch failure is
	// recovered by returning the built-in fallback set; individual
	// malformed records are skipped and counted, never fatal.
	Load(ctx context.Context) ([]entity.VocabEntry, entity.LoadReport)
}

type vocabLoader struct {
	source repository.RecordSource
	logger *logrus.Logger
}

func NewVocabLoader(source repository.RecordSource, logger *logrus.Logger) VocabLoader {
	return &vocabLoader{source: source, logger: logger}
}

func (l *vocabLoader) Load(ctx context.Context) ([]entity.VocabEntry, entity.LoadReport) {
	records, err := l.source.FetchAll(ctx)
	if err != nil {
		l.logger.WithError(err).Warn("vocabulary fetch failed, using built-in fallback set")
		fallback := FallbackEntries()
		return fallback, entity.LoadReport{
			Total:       len(fallback),
			Accepted:    len(fallback),
			FetchFailed: true,
		}
	}

	report := entity.LoadReport{Total: len(records)}
	index := make(entity.VocabIndex, len(records))
	for _, record := range records {
		entry, reason := l.normalize(record)
		if reason != "" {
			report.Skipped++
			l.logger.WithFields(logrus.Fields{
				"record": record.ID,
				"reason": reason,
			}).Debug("skipped vocabulary record")
			continue
		}
		// Last write wins on duplicate word+preposition keys.
		index[entry.Key()] = entry
	}
	report.Accepted = len(index)

	entries := make([]entity.VocabEntry, 0, len(index))
	for _, entry := range index {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key() < entries[j].Key() })

	l.logger.WithFields(logrus.Fields{
		"total":    report.Total,
		"accepted": report.Accepted,
		"skipped":  report.Skipped,
	}).Info("vocabulary loaded")
	return entries, report
}

// normalize validates one record. A non-empty reason means the record is
// skipped.
func (l *vocabLoader) normalize(record repository.SourceRecord) (entity.VocabEntry, string) {
	wordField, ok := record.Field(fieldWord)
	if !ok {
		return entity.VocabEntry{}, "missing Word field"
	}
	notationField, ok := record.Field(fieldPreposition)
	if !ok {
		return entity.VocabEntry{}, "missing Preposition field"
	}

	word := wordField.Plain()
	notation := notationField.Plain()
	if word == "" || notation == "" {
		return entity.VocabEntry{}, "empty Word or Preposition"
	}

	parsed, err := prepnotation.Parse(notation)
	if err != nil {
		return entity.VocabEntry{}, fmt.Sprintf("unparseable notation %q", notation)
	}

	translation := record.FieldText(fieldTranslation)
	example := record.FieldText(fieldExample)
	if example == "" {
		example = SynthesizeExample(word, parsed.Preposition, translation)
	}

	return entity.VocabEntry{
		Word:        word,
		Preposition: parsed.Preposition,
		Case:        parsed.Case,
		Example:     example,
		Distractors: Distractors(parsed.Preposition),
		Difficulty:  entity.ClassifyDifficulty(word),
		Translation: translation,
		Notation:    notation,
		RecordID:    record.ID,
	}, ""
}

// SynthesizeExample builds a usage sentence when the source record carries
// none.
func SynthesizeExample(word, preposition, translation string) string {
	if translation != "" {
		return fmt.Sprintf("I %s something. (Ich %s %s etwas.)", translation, word, preposition)
	}
	return fmt.Sprintf("Ich %s %s etwas.", word, preposition)
}

// FallbackEntries is the built-in vocabulary used when the source is
// unreachable, so the bot stays usable.
func FallbackEntries() []entity.VocabEntry {
	return []entity.VocabEntry{
		{
			Word:        "achten",
			Preposition: "auf",
			Case:        prepnotation.CaseAccusative,
			Example:     "I pay attention to something. (Ich achte auf etwas.)",
			Distractors: []string{"für", "mit", "über"},
			Difficulty:  entity.DifficultyBeginner,
			Translation: "pay attention to",
			Notation:    "auf + A",
		},
		{
			Word:        "denken",
			Preposition: "an",
			Case:        prepnotation.CaseAccusative,
			Example:     "I think of something. (Ich denke an etwas.)",
			Distractors: []string{"auf", "von", "über"},
			Difficulty:  entity.DifficultyBeginner,
			Translation: "think of",
			Notation:    "an + A",
		},
		{
			Word:        "warten",
			Preposition: "auf",
			Case:        prepnotation.CaseAccusative,
			Example:     "I wait for something. (Ich warte auf etwas.)",
			Distractors: []string{"für", "zu", "mit"},
			Difficulty:  entity.DifficultyBeginner,
			Translation: "wait for",
			Notation:    "auf + A",
		},
	}
}
