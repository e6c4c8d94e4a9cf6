// Package score implements the five independent signal scorers of spec.md
// §4.3: IDF, position, POS heuristic, entity and local entropy. Each is a
// pure function of the token sequence (and, for IDF, the frequency map
// derived from it) — no iteration-order dependence, matching the
// determinism requirement of spec.md §5.
package score

import "github.com/vippsas/promptprune/internal/tokenize"

// Signals holds one score per token for each of the five independent
// scorers, indexed by Token.Index.
type Signals struct {
	IDF      []float64
	Position []float64
	POS      []float64
	Entity   []float64
	Entropy  []float64
}

// Compute runs all five scorers over tokens and returns the per-token
// signal vectors. contextualStopwords enables the POS heuristic's
// contextual exception rules (spec.md §4.3).
func Compute(tokens []tokenize.Token, contextualStopwords bool) Signals {
	return Signals{
		IDF:      IDFScores(tokens),
		Position: PositionScores(tokens),
		POS:      POSScores(tokens, contextualStopwords),
		Entity:   EntityScores(tokens),
		Entropy:  EntropyScores(tokens),
	}
}
