// Package metrics implements the quality-metrics reporter named as an
// out-of-scope external collaborator in spec.md §1: read-only, after-the-
// fact evaluation of a CompressionResult. It never feeds back into
// selection.
package metrics

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/promptprune/internal/span"
	"github.com/vippsas/promptprune/internal/tokenize"
)

// Report is the outcome of evaluating one compression against a reference
// "must keep" set and the protected spans detected for the same input.
type Report struct {
	RetainedMustKeep   int
	TotalMustKeep      int
	ProtectedRetention float64
	RealizedRatio      float32
	TargetRatio        float64
}

// MustKeepRetention counts the mustKeep terms (case-insensitive) that
// appear as whole words in compressed, returning that count and
// len(mustKeep).
func MustKeepRetention(compressed string, mustKeep []string) (retained, total int) {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(compressed) {
		words[strings.ToLower(w)] = struct{}{}
	}
	for _, term := range mustKeep {
		if _, ok := words[strings.ToLower(term)]; ok {
			retained++
		}
	}
	return retained, len(mustKeep)
}

// ProtectedRetention counts how many protected-span-overlapping word tokens
// in original survive, by exact text, in compressed, returning that count
// and the total number of such tokens. It
// re-derives the protected spans (spec.md §4.1) and the word-token sequence
// (spec.md §4.2) over original rather than trusting any intermediate state
// from the Compress call that produced compressed, since CompressionResult
// itself carries no spans or tokens (spec.md §3's ownership model releases
// them before return).
func ProtectedRetention(original, compressed string, protectionEnabled bool) (retained, total int) {
	normalized := tokenize.Normalize(original)
	spans := span.Detect(normalized, protectionEnabled)
	tokens := tokenize.Split(normalized)

	available := make(map[string]int, len(tokens))
	for _, w := range strings.Fields(compressed) {
		available[w]++
	}

	for _, tok := range tokens {
		if !span.Overlaps(spans, tok.ByteStart, tok.ByteEnd) {
			continue
		}
		total++
		if available[tok.Text] > 0 {
			available[tok.Text]--
			retained++
		}
	}
	return retained, total
}

// Evaluate builds a full Report for one compression: original is the text
// passed to Compress; compressed, targetRatio and realizedRatio come from
// the resulting CompressionResult and the Config it ran with; mustKeep is
// the caller's reference "must keep" term list. The returned Report is
// ready to pass to Log.
func Evaluate(original, compressed string, mustKeep []string, protectionEnabled bool, targetRatio float64, realizedRatio float32) Report {
	retainedMustKeep, totalMustKeep := MustKeepRetention(compressed, mustKeep)
	retainedProtected, totalProtected := ProtectedRetention(original, compressed, protectionEnabled)

	protectedRetention := 1.0
	if totalProtected > 0 {
		protectedRetention = float64(retainedProtected) / float64(totalProtected)
	}

	return Report{
		RetainedMustKeep:   retainedMustKeep,
		TotalMustKeep:      totalMustKeep,
		ProtectedRetention: protectedRetention,
		RealizedRatio:      realizedRatio,
		TargetRatio:        targetRatio,
	}
}

// Log emits r as structured fields at info level, in the style of the
// teacher's cli/cmd/constants.go read-only introspection commands.
func Log(logger logrus.FieldLogger, r Report) {
	if logger == nil {
		return
	}
	logger.WithFields(logrus.Fields{
		"retained_must_keep":  r.RetainedMustKeep,
		"total_must_keep":     r.TotalMustKeep,
		"protected_retention": r.ProtectedRetention,
		"realized_ratio":      r.RealizedRatio,
		"target_ratio":        r.TargetRatio,
	}).Info("promptprune: quality report")
}
