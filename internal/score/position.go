package score

import "github.com/vippsas/promptprune/internal/tokenize"

// PositionScores applies the U-shaped position signal: tokens near either
// end of the input score higher than tokens in the middle.
func PositionScores(tokens []tokenize.Token) []float64 {
	n := len(tokens)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}
	for _, tok := range tokens {
		p := float64(tok.Index) / float64(n)
		switch {
		case p < 0.1 || p > 0.9:
			scores[tok.Index] = 1.0
		case p < 0.2 || p > 0.8:
			scores[tok.Index] = 0.7
		default:
			scores[tok.Index] = 0.3
		}
	}
	return scores
}
