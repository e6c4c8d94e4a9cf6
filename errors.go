package promptprune

import "fmt"

// InputTooShort is returned when the input fails the size gate of spec.md
// §4.8 step 1: either its byte length or its estimated token count (via the
// configured Counter) is below the configured minimum. Callers typically
// recover by passing the input through unchanged.
type InputTooShort struct {
	Size    int
	Minimum int
	Unit    string // "bytes" or "tokens"
}

func (e InputTooShort) Error() string {
	return fmt.Sprintf("promptprune: input too short: %d %s, minimum %d %s", e.Size, e.Unit, e.Minimum, e.Unit)
}

// NegativeGain is returned when the compressed representation would be as
// large as or larger than the original, per the external tokenizer (spec.md
// §4.8 step 4). Callers typically recover by passing the original through
// unchanged.
type NegativeGain struct {
	Ratio float64
}

func (e NegativeGain) Error() string {
	return fmt.Sprintf("promptprune: negative gain: compressed/original ratio %.4f >= 1.0", e.Ratio)
}

// RenderError wraps a failure from the image-output collaborator
// (internal/render). It never surfaces from the core text pipeline.
type RenderError struct {
	Cause error
}

func (e RenderError) Error() string {
	return fmt.Sprintf("promptprune: render failed: %s", e.Cause)
}

func (e RenderError) Unwrap() error {
	return e.Cause
}
