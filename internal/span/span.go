// Package span implements the Protector: a pure function that scans input
// text with a fixed set of regular expressions and returns the byte-offset
// spans that must never be removed from a compression.
package span

import (
	"regexp"
	"strings"
)

// Kind identifies which pattern produced a Span.
type Kind int

const (
	CodeBlock Kind = iota
	JSONBlock
	Path
	Identifier
	HashOrNumber
	Bracket
)

func (k Kind) String() string {
	switch k {
	case CodeBlock:
		return "CodeBlock"
	case JSONBlock:
		return "JsonBlock"
	case Path:
		return "Path"
	case Identifier:
		return "Identifier"
	case HashOrNumber:
		return "HashOrNumber"
	case Bracket:
		return "Bracket"
	default:
		return "Unknown"
	}
}

// Span is a byte-offset range in the input that must be preserved. Spans
// from different patterns (or the same pattern) may freely overlap; only
// their union matters to the Fuser's protection test.
type Span struct {
	ByteStart int
	ByteEnd   int
	Kind      Kind
}

// patterns mirrors the table in spec.md §4.1. Compiled once at package init
// and never rebuilt per call, matching the teacher's one-time scanner-setup
// idiom.
var patterns = []struct {
	kind   Kind
	re     *regexp.Regexp
	filter func(match string) bool
}{
	{CodeBlock, regexp.MustCompile("(?s)```.*?```"), nil},
	{JSONBlock, regexp.MustCompile(`\{[^{}]*:[^{}]*\}`), nil},
	{Path, regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*://[^\s]+`), nil},
	{Path, regexp.MustCompile(`(?:[\w.-]*[/\\])+[\w.-]+\.[A-Za-z0-9]{1,5}\b`), nil},
	{Identifier, regexp.MustCompile(`[A-Z][a-z0-9]+[A-Z][A-Za-z0-9]+`), nil},
	{Identifier, regexp.MustCompile(`[a-z_][a-z0-9_]{2,}`), func(m string) bool {
		return strings.Contains(m, "_")
	}},
	{Identifier, regexp.MustCompile(`[A-Z][A-Z0-9_]+`), func(m string) bool {
		return len(m) >= 2
	}},
	{HashOrNumber, regexp.MustCompile(`[0-9a-fA-F]{7,}`), nil},
	{HashOrNumber, regexp.MustCompile(`[0-9]{3,}`), nil},
	{Bracket, regexp.MustCompile(`\{[^{}]*\}`), nil},
	{Bracket, regexp.MustCompile(`\[[^\[\]]*\]`), nil},
	{Bracket, regexp.MustCompile(`\([^()]*\)`), nil},
}

// Detect scans text with every configured pattern and returns the full,
// possibly-overlapping, possibly-duplicated collection of protected spans.
// Dedup is unnecessary: the overlap test performed downstream is stable
// under duplication. Detect returns nil if enabled is false.
func Detect(text string, enabled bool) []Span {
	if !enabled {
		return nil
	}
	var spans []Span
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if p.filter != nil && !p.filter(text[loc[0]:loc[1]]) {
				continue
			}
			spans = append(spans, Span{ByteStart: loc[0], ByteEnd: loc[1], Kind: p.kind})
		}
	}
	return spans
}

// Overlaps reports whether the byte range [start,end) overlaps any span in
// spans. A token is protected iff this returns true for its byte range.
func Overlaps(spans []Span, start, end int) bool {
	for _, s := range spans {
		if start < s.ByteEnd && end > s.ByteStart {
			return true
		}
	}
	return false
}
