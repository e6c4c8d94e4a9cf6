package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/promptprune/internal/tokenize"
)

func tok(texts ...string) []tokenize.Token {
	tokens := make([]tokenize.Token, len(texts))
	offset := 0
	for i, txt := range texts {
		tokens[i] = tokenize.Token{Index: i, Text: txt, ByteStart: offset, ByteEnd: offset + len(txt)}
		offset += len(txt) + 1
	}
	return tokens
}

func TestIDFScores_RareVsCommon(t *testing.T) {
	tokens := tok("the", "quick", "the", "the", "fox")
	scores := IDFScores(tokens)
	// "the" appears 3 times, "fox" once: fox must score higher.
	assert.Greater(t, scores[4], scores[0])
	assert.InDelta(t, math.Log(5.0/1.0), scores[4], 1e-9)
	assert.InDelta(t, math.Log(5.0/3.0), scores[0], 1e-9)
}

func TestPositionScores_UShape(t *testing.T) {
	tokens := tok(make([]string, 20)...)
	for i := range tokens {
		tokens[i].Text = "w"
	}
	scores := PositionScores(tokens)
	require.Len(t, scores, 20)
	assert.Equal(t, 1.0, scores[0])
	assert.Equal(t, 1.0, scores[19])
	assert.Equal(t, 0.3, scores[10])
}

func TestPOSScores_StopwordLow(t *testing.T) {
	tokens := tok("the", "Analyzer")
	scores := POSScores(tokens, true)
	assert.Equal(t, 0.1, scores[0])
	assert.Equal(t, 1.0, scores[1])
}

func TestPOSScores_ContextualException_To(t *testing.T) {
	tokens := tok("need", "to", "finish")
	scores := POSScores(tokens, true)
	assert.Equal(t, 0.7, scores[1])
}

func TestPOSScores_ContextualDisabled(t *testing.T) {
	tokens := tok("need", "to", "finish")
	scores := POSScores(tokens, false)
	assert.Equal(t, 0.1, scores[1])
}

func TestPOSScores_LongWord(t *testing.T) {
	tokens := tok("compression")
	scores := POSScores(tokens, true)
	assert.Equal(t, 0.7, scores[0])
}

func TestEntityScores_UppercaseAndAcronym(t *testing.T) {
	tokens := tok("Paris", "NASA", "lowercase")
	scores := EntityScores(tokens)
	assert.InDelta(t, 0.3, scores[0], 1e-9)
	assert.InDelta(t, 0.7, scores[1], 1e-9) // 0.3 (upper) + 0.4 (all-caps)
	assert.InDelta(t, 0.0, scores[2], 1e-9)
}

func TestEntityScores_EmailClamped(t *testing.T) {
	tokens := tok("CONTACT@EXAMPLE.COM")
	scores := EntityScores(tokens)
	assert.LessOrEqual(t, scores[0], 1.0)
}

func TestEntropyScores_RepeatedVsVaried(t *testing.T) {
	repeated := tok("a", "a", "a", "a", "a", "a", "a", "a", "a", "a", "a")
	varied := tok("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k")
	rep := EntropyScores(repeated)
	var_ := EntropyScores(varied)
	assert.Less(t, rep[5], var_[5])
	assert.Equal(t, 1.0, var_[5])
}
