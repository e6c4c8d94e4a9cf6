package tables

// ToPrecedents are the lowercase previous-tokens that keep a following "to"
// stopword (§4.3 contextual exception rule 1).
var ToPrecedents = buildSet([]string{
	"how", "steps", "need", "want", "try", "used", "able",
})

// PrepositionTriggers is the set of stopwords governed by contextual
// exception rule 2 ("in|on|at").
var PrepositionTriggers = buildSet([]string{"in", "on", "at"})

// CopulaTriggers is the set of stopwords governed by contextual exception
// rule 3 ("is|are|was|were|be").
var CopulaTriggers = buildSet([]string{"is", "are", "was", "were", "be"})

// ConjunctionTriggers is the set of stopwords governed by contextual
// exception rule 4 ("and|or").
var ConjunctionTriggers = buildSet([]string{"and", "or"})
