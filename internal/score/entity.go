package score

import (
	"strings"

	"github.com/vippsas/promptprune/internal/classify"
	"github.com/vippsas/promptprune/internal/tokenize"
)

// EntityScores applies the entity heuristic of spec.md §4.3, clamped to a
// maximum of 1.0.
func EntityScores(tokens []tokenize.Token) []float64 {
	n := len(tokens)
	scores := make([]float64, n)
	for i, tok := range tokens {
		var s float64
		if classify.StartsUpperLetter(tok.Text) {
			s += 0.3
		}
		if i > 0 {
			prevLower := strings.ToLower(tokens[i-1].Text)
			if strings.HasPrefix(prevLower, "mr.") || strings.HasPrefix(prevLower, "dr.") {
				s += 0.5
			}
		}
		if strings.Contains(tok.Text, "@") || strings.HasPrefix(tok.Text, "http") {
			s += 0.6
		}
		if len(tok.Text) > 1 && tok.Text == strings.ToUpper(tok.Text) {
			s += 0.4
		}
		if s > 1.0 {
			s = 1.0
		}
		scores[tok.Index] = s
	}
	return scores
}
