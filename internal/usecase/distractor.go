package usecase

import "github.com/samber/lo"

// Curated pools of common German prepositions, grouped by the case they
// usually govern. The pools overlap; two-way prepositions appear in both.
var (
	accusativePreps = []string{"auf", "für", "gegen", "durch", "ohne", "um", "an", "über"}
	dativePreps     = []string{"mit", "von", "zu", "bei", "nach", "aus", "vor", "an"}
	twoWayPreps     = []string{"in", "über", "unter", "zwischen", "neben", "hinter", "vor"}
)

const maxDistractors = 3

// Distractors samples up to three plausible wrong answers for a quiz item.
// The correct preposition never appears in the result and the order is
// randomized per call.
func Distractors(correct string) []string {
	pool := make([]string, 0, len(accusativePreps)+len(dativePreps)+len(twoWayPreps))
	pool = append(pool, accusativePreps...)
	pool = append(pool, dativePreps...)
	pool = append(pool, twoWayPreps...)

	candidates := lo.Without(lo.Uniq(pool), correct)

	count := maxDistractors
	if len(candidates) < count {
		count = len(candidates)
	}
	return lo.Samples(candidates, count)
}
