// Package classify implements the critical classifier: a per-token
// predicate recognizing negations, comparators, modal qualifiers and
// configured domain terms, producing an override score that the Fuser
// applies ahead of the fused signal score.
package classify

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/vippsas/promptprune/internal/tables"
)

// Critical is the score returned for negations and comparators (spec.md
// §4.4 rules 2-3). Modal qualifiers return Modal; domain terms return +Inf.
const Critical = 10.0

// Modal is the score returned for modal qualifiers (spec.md §4.4 rule 4),
// strictly lower than Critical so gap-fill anchors (>0.8) still treat it as
// an override but the Selector's ranking keeps negations/comparators ahead.
const Modal = 5.0

// Options controls which classifier rules are active, mirroring
// Config.PreserveNegations/PreserveComparators from spec.md §6.
type Options struct {
	PreserveNegations   bool
	PreserveComparators bool
	DomainTerms         []string
}

// Classifier evaluates the priority-ordered rule chain of spec.md §4.4 over
// a fixed domain-term set and enabled-rule configuration. Built once per
// pipeline configuration and reused across tokens/invocations, matching the
// teacher's build-once, call-many scanner idiom.
type Classifier struct {
	domainTerms map[string]struct{}
	opts        Options
}

// New builds a Classifier from opts. Domain term comparison is case-
// insensitive, matched against the lowercase form.
func New(opts Options) *Classifier {
	c := &Classifier{opts: opts, domainTerms: make(map[string]struct{}, len(opts.DomainTerms))}
	for _, term := range opts.DomainTerms {
		c.domainTerms[strings.ToLower(term)] = struct{}{}
	}
	return c
}

// Score evaluates the rule chain for one token (original case preserved in
// token; lower is its precomputed lowercase form). It returns the override
// score and true if a rule fired, or (0, false) if no override applies —
// the caller (Fuser) then falls through to the protection check and the
// fused signal score.
func (c *Classifier) Score(token, lower string) (float64, bool) {
	if _, ok := c.domainTerms[lower]; ok {
		return math.Inf(1), true
	}
	if c.opts.PreserveNegations && tables.IsNegation(lower) {
		return Critical, true
	}
	if c.opts.PreserveComparators && tables.IsComparator(token) {
		return Critical, true
	}
	if tables.IsModal(lower) {
		return Modal, true
	}
	return 0, false
}

// StartsUpperLetter reports whether s begins with a Unicode letter that is
// both an identifier-start rune (per xid) and uppercase. Shared by the
// entity and POS-heuristic scorers so "begins with an uppercase letter"
// means the same thing everywhere in the pipeline.
func StartsUpperLetter(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return xid.Start(r) && unicode.IsUpper(r)
}
