package score

import (
	"strings"

	"github.com/vippsas/promptprune/internal/classify"
	"github.com/vippsas/promptprune/internal/tables"
	"github.com/vippsas/promptprune/internal/tokenize"
)

// POSScores applies the part-of-speech heuristic of spec.md §4.3: stopwords
// score low unless a contextual exception rule keeps them; capitalized,
// long, or ordinary tokens score progressively higher.
func POSScores(tokens []tokenize.Token, contextualStopwords bool) []float64 {
	n := len(tokens)
	scores := make([]float64, n)
	for i, tok := range tokens {
		lower := strings.ToLower(tok.Text)
		switch {
		case tables.IsStopword(lower):
			var prev, next *tokenize.Token
			if i > 0 {
				prev = &tokens[i-1]
			}
			if i < n-1 {
				next = &tokens[i+1]
			}
			if contextualStopwords && contextualException(lower, prev, next) {
				scores[tok.Index] = 0.7
			} else {
				scores[tok.Index] = 0.1
			}
		case classify.StartsUpperLetter(tok.Text):
			scores[tok.Index] = 1.0
		case len(tok.Text) > 6:
			scores[tok.Index] = 0.7
		default:
			scores[tok.Index] = 0.5
		}
	}
	return scores
}

// contextualException implements the four contextual exception rules of
// spec.md §4.3. prev/next are nil at input boundaries, in which case the
// rule they gate simply cannot fire.
func contextualException(lower string, prev, next *tokenize.Token) bool {
	switch {
	case lower == "to":
		return prevInToPrecedents(prev)
	case isPrepositionTrigger(lower):
		return next != nil && (strings.ContainsAny(next.Text, `/\.`) || classify.StartsUpperLetter(next.Text) || strings.Contains(next.Text, "_"))
	case isCopulaTrigger(lower):
		return prev != nil && (classify.StartsUpperLetter(prev.Text) || len(prev.Text) > 6 || strings.Contains(prev.Text, "_"))
	case isConjunctionTrigger(lower):
		if prev == nil || next == nil {
			return false
		}
		prevStrong := classify.StartsUpperLetter(prev.Text) || len(prev.Text) > 6
		nextStrong := classify.StartsUpperLetter(next.Text) || len(next.Text) > 6
		return prevStrong && nextStrong
	default:
		return false
	}
}

func prevInToPrecedents(prev *tokenize.Token) bool {
	if prev == nil {
		return false
	}
	_, ok := tables.ToPrecedents[strings.ToLower(prev.Text)]
	return ok
}

func isPrepositionTrigger(lower string) bool {
	_, ok := tables.PrepositionTriggers[lower]
	return ok
}

func isCopulaTrigger(lower string) bool {
	_, ok := tables.CopulaTriggers[lower]
	return ok
}

func isConjunctionTrigger(lower string) bool {
	_, ok := tables.ConjunctionTriggers[lower]
	return ok
}
