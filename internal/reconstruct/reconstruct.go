// Package reconstruct implements the Reconstructor: it emits the selected
// tokens in original order, joined by single spaces.
package reconstruct

import (
	"sort"
	"strings"

	"github.com/vippsas/promptprune/internal/tokenize"
)

// Join emits text[tokens[i].ByteStart:tokens[i].ByteEnd] for every index in
// kept, in ascending order, joined by a single ASCII space. kept need not be
// pre-sorted. Leading/trailing whitespace in the result is not trimmed
// further beyond what token boundaries already exclude.
func Join(text string, tokens []tokenize.Token, kept []int) string {
	order := append([]int(nil), kept...)
	sort.Ints(order)
	var b strings.Builder
	for i, idx := range order {
		if i > 0 {
			b.WriteByte(' ')
		}
		tok := tokens[idx]
		b.WriteString(text[tok.ByteStart:tok.ByteEnd])
	}
	return b.String()
}
