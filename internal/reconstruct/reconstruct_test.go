package reconstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vippsas/promptprune/internal/tokenize"
)

func TestJoin_Subsequence(t *testing.T) {
	text := "the quick brown fox jumps"
	tokens := tokenize.Split(text)
	got := Join(text, tokens, []int{0, 2, 4})
	assert.Equal(t, "the brown jumps", got)
}

func TestJoin_Empty(t *testing.T) {
	text := "anything here"
	tokens := tokenize.Split(text)
	assert.Equal(t, "", Join(text, tokens, nil))
}

func TestJoin_Single(t *testing.T) {
	text := "alpha beta gamma"
	tokens := tokenize.Split(text)
	assert.Equal(t, "beta", Join(text, tokens, []int{1}))
}
