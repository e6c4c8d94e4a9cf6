package score

import (
	"math"

	"github.com/vippsas/promptprune/internal/tokenize"
)

// IDFScores computes inverse document frequency over exact-case token text:
// for a token with frequency f in the N-token input, score = ln(N/f).
func IDFScores(tokens []tokenize.Token) []float64 {
	n := len(tokens)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}
	freq := make(map[string]int, n)
	for _, tok := range tokens {
		freq[tok.Text]++
	}
	for _, tok := range tokens {
		f := freq[tok.Text]
		scores[tok.Index] = math.Log(float64(n) / float64(f))
	}
	return scores
}
