package classify

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newDefault() *Classifier {
	return New(Options{
		PreserveNegations:   true,
		PreserveComparators: true,
		DomainTerms:         []string{"Vectorizer", "Synap"},
	})
}

func TestScore_DomainTerm(t *testing.T) {
	c := newDefault()
	score, ok := c.Score("Vectorizer", "vectorizer")
	assert.True(t, ok)
	assert.True(t, math.IsInf(score, 1))
}

func TestScore_Negation(t *testing.T) {
	c := newDefault()
	score, ok := c.Score("not", "not")
	assert.True(t, ok)
	assert.Equal(t, Critical, score)
}

func TestScore_NegationDisabled(t *testing.T) {
	c := New(Options{PreserveNegations: false})
	_, ok := c.Score("not", "not")
	assert.False(t, ok)
}

func TestScore_Comparator(t *testing.T) {
	c := newDefault()
	score, ok := c.Score("!=", "!=")
	assert.True(t, ok)
	assert.Equal(t, Critical, score)
}

func TestScore_ComparatorCaseSensitive(t *testing.T) {
	c := newDefault()
	_, ok := c.Score("Not_A_Comparator", strings.ToLower("Not_A_Comparator"))
	assert.False(t, ok)
}

func TestScore_Modal(t *testing.T) {
	c := newDefault()
	score, ok := c.Score("must", "must")
	assert.True(t, ok)
	assert.Equal(t, Modal, score)
}

func TestScore_NoOverride(t *testing.T) {
	c := newDefault()
	_, ok := c.Score("banana", "banana")
	assert.False(t, ok)
}

func TestStartsUpperLetter(t *testing.T) {
	assert.True(t, StartsUpperLetter("Vectorizer"))
	assert.False(t, StartsUpperLetter("vectorizer"))
	assert.False(t, StartsUpperLetter(""))
	assert.False(t, StartsUpperLetter("123"))
}
