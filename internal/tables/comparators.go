package tables

// Comparators is the closed set of comparator operator tokens consulted by
// the critical classifier (rule 3). Matching is case-sensitive and exact —
// comparators do not case-fold.
var Comparators = buildSet(comparatorTokens)

var comparatorTokens = []string{
	"!=", "!==", "<=", ">=", "<", ">", "==", "===", "!",
}

// IsComparator reports whether token (verbatim, not lowercased) is a
// configured comparator operator.
func IsComparator(token string) bool {
	_, ok := Comparators[token]
	return ok
}

// Modals is the closed set of modal-qualifier tokens consulted by the
// critical classifier (rule 4). Matching is case-insensitive.
var Modals = buildSet(modalWords)

var modalWords = []string{
	"only", "except", "must", "should", "may", "might", "at", "least",
	"most",
}

// IsModal reports whether the lowercase form of word is a modal qualifier.
func IsModal(lower string) bool {
	_, ok := Modals[lower]
	return ok
}
