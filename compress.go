// Package promptprune compresses natural-language prompts destined for
// large language models by removing low-value tokens while preserving
// semantic-critical content: identifiers, code blocks, structured data,
// negations, comparators and configured domain terms are never dropped.
//
// Compress is a pure function: one input string in, one CompressionResult
// out, no shared mutable state beyond the read-only configuration tables
// and compiled regular expressions built once at package init (spec.md §5).
package promptprune

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/promptprune/internal/classify"
	"github.com/vippsas/promptprune/internal/fuse"
	"github.com/vippsas/promptprune/internal/reconstruct"
	"github.com/vippsas/promptprune/internal/score"
	"github.com/vippsas/promptprune/internal/selector"
	"github.com/vippsas/promptprune/internal/span"
	"github.com/vippsas/promptprune/internal/tokenize"
)

// Compress runs the full scoring-and-selection pipeline of spec.md §2 over
// input and returns the compressed text plus statistics, or one of
// InputTooShort / NegativeGain on failure. logger may be nil, in which case
// a disabled logrus logger is used — matching the teacher's pattern of
// accepting a logrus.FieldLogger parameter (cli/cmd/config.go) rather than
// reaching for a package-global logger.
func Compress(ctx context.Context, cfg Config, input string, logger logrus.FieldLogger) (CompressionResult, error) {
	if logger == nil {
		logger = silentLogger()
	}
	counter := cfg.Counter
	if counter == nil {
		counter = DefaultConfig().Counter
	}

	if len(input) < cfg.MinInputBytes {
		return CompressionResult{}, InputTooShort{Size: len(input), Minimum: cfg.MinInputBytes, Unit: "bytes"}
	}
	estimatedTokens := counter.Count(input)
	if estimatedTokens < cfg.MinInputTokens {
		return CompressionResult{}, InputTooShort{Size: estimatedTokens, Minimum: cfg.MinInputTokens, Unit: "tokens"}
	}

	normalized := tokenize.Normalize(input)
	spans := span.Detect(normalized, cfg.EnableProtectionMasks)
	tokens := tokenize.Split(normalized)

	signals := score.Compute(tokens, cfg.EnableContextualStopwords)
	if cfg.CorpusStore != nil {
		applyCorpusIDF(ctx, cfg, tokens, signals)
	}

	classifier := classify.New(classify.Options{
		PreserveNegations:   cfg.PreserveNegations,
		PreserveComparators: cfg.PreserveComparators,
		DomainTerms:         cfg.DomainTerms,
	})

	weights := fuse.Weights{
		IDF:      cfg.IDFWeight,
		Position: cfg.PositionWeight,
		POS:      cfg.POSWeight,
		Entity:   cfg.EntityWeight,
		Entropy:  cfg.EntropyWeight,
	}
	final := fuse.Fuse(tokens, signals, classifier, spans, weights)

	kept := selector.Select(final, cfg.TargetRatio, cfg.MinGapBetweenCritical)
	compressed := reconstruct.Join(normalized, tokens, kept)

	originalTokens := counter.Count(normalized)
	compressedTokens := counter.Count(compressed)

	logger.WithFields(logrus.Fields{
		"word_tokens":       len(tokens),
		"kept":              len(kept),
		"original_tokens":   originalTokens,
		"compressed_tokens": compressedTokens,
	}).Debug("promptprune: compression pass complete")

	if originalTokens == 0 || compressedTokens >= originalTokens {
		ratio := 1.0
		if originalTokens > 0 {
			ratio = float64(compressedTokens) / float64(originalTokens)
		}
		return CompressionResult{}, NegativeGain{Ratio: ratio}
	}

	if cfg.CorpusStore != nil {
		recordCorpus(ctx, cfg, tokens, logger)
	}

	return CompressionResult{
		Compressed:       compressed,
		OriginalTokens:   uint32(originalTokens),
		CompressedTokens: uint32(compressedTokens),
		Ratio:            float32(compressedTokens) / float32(originalTokens),
		TokensRemoved:    uint32(originalTokens - compressedTokens),
		Format:           FormatText,
	}, nil
}

func silentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}
