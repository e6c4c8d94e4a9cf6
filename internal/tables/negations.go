package tables

// Negations is the closed set of negation tokens consulted by the critical
// classifier (rule 2). Matching is case-insensitive against the lowercase
// form of a token.
var Negations = buildSet(negationWords)

var negationWords = []string{
	"not", "no", "never", "none", "nobody", "nothing", "neither", "nor",
	"n't", "cannot", "can't", "won't", "don't", "doesn't", "didn't",
	"isn't", "aren't", "wasn't", "weren't", "hasn't", "haven't", "hadn't",
	"shouldn't", "wouldn't", "couldn't", "mustn't", "without",
}

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsNegation reports whether the lowercase form of word is a negation term.
func IsNegation(lower string) bool {
	_, ok := Negations[lower]
	return ok
}
