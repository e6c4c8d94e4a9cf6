// Package fuse implements the Fuser: it combines the five signal scores
// with configured weights and applies the critical-classifier and
// protected-span overrides, yielding one final score per token.
package fuse

import (
	"math"
	"strings"

	"github.com/vippsas/promptprune/internal/classify"
	"github.com/vippsas/promptprune/internal/score"
	"github.com/vippsas/promptprune/internal/span"
	"github.com/vippsas/promptprune/internal/tokenize"
)

// Weights are the fusion weights of spec.md §6. They are consumed as given
// and are not required to sum to 1.
type Weights struct {
	IDF      float64
	Position float64
	POS      float64
	Entity   float64
	Entropy  float64
}

// Fuse computes the final per-token score (spec.md §4.5). Indexing is by
// Token.Index throughout.
func Fuse(tokens []tokenize.Token, signals score.Signals, classifier *classify.Classifier, spans []span.Span, weights Weights) []float64 {
	final := make([]float64, len(tokens))
	for _, tok := range tokens {
		i := tok.Index
		lower := strings.ToLower(tok.Text)
		if critical, ok := classifier.Score(tok.Text, lower); ok {
			final[i] = critical
			continue
		}
		if span.Overlaps(spans, tok.ByteStart, tok.ByteEnd) {
			final[i] = math.Inf(1)
			continue
		}
		final[i] = weights.IDF*signals.IDF[i] +
			weights.Position*signals.Position[i] +
			weights.POS*signals.POS[i] +
			weights.Entity*signals.Entity[i] +
			weights.Entropy*signals.Entropy[i]
	}
	return final
}
