// Package tokencount defines the external tokenizer collaborator (spec.md
// §6): a capability used only to produce pre/post token counts for
// CompressionResult and the gain check. Its exact tokenization policy never
// influences selection — the core pipeline's IDF and Selector operate on
// whitespace-split word tokens regardless of which Counter is wired in.
package tokencount

import "math"

// Counter estimates a token count for billing/reporting purposes.
type Counter interface {
	Count(text string) int
}

// Stub is the conforming stub named in spec.md §6:
// max(1, ceil(byte_length/4)). It requires no model vocabulary and is the
// default wired into the pipeline driver.
type Stub struct{}

// Count implements Counter.
func (Stub) Count(text string) int {
	estimate := int(math.Ceil(float64(len(text)) / 4.0))
	if estimate < 1 {
		estimate = 1
	}
	return estimate
}
