package score

import "github.com/vippsas/promptprune/internal/tokenize"

// EntropyScores applies the local entropy signal of spec.md §4.3: for each
// token, the fraction of distinct token strings within a radius-5 window
// (inclusive of the center token, clipped to the input bounds).
func EntropyScores(tokens []tokenize.Token) []float64 {
	const radius = 5
	n := len(tokens)
	scores := make([]float64, n)
	for i := range tokens {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius
		if hi > n-1 {
			hi = n - 1
		}
		distinct := make(map[string]struct{}, hi-lo+1)
		for j := lo; j <= hi; j++ {
			distinct[tokens[j].Text] = struct{}{}
		}
		windowSize := hi - lo + 1
		scores[tokens[i].Index] = float64(len(distinct)) / float64(windowSize)
	}
	return scores
}
