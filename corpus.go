package promptprune

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/promptprune/internal/score"
	"github.com/vippsas/promptprune/internal/tokenize"
)

// corpusIDFWeight is the blend factor applied when folding the corpus-aware
// document-frequency signal into the core single-document IDF score: final
// IDF becomes a weighted average of the two, so a caller with no corpus
// history yet (every DocFreq call returning 0/0) degrades gracefully to the
// single-document score instead of zeroing it out.
const corpusIDFWeight = 0.5

// applyCorpusIDF blends cfg.CorpusStore's document-frequency estimate into
// signals.IDF in place. This is additive to spec.md §4.3's IDF scorer, which
// remains single-document and unchanged when CorpusStore is nil.
func applyCorpusIDF(ctx context.Context, cfg Config, tokens []tokenize.Token, signals score.Signals) {
	for _, tok := range tokens {
		docFreq, totalDocs, err := cfg.CorpusStore.DocFreq(ctx, tok.Text)
		if err != nil || totalDocs == 0 || docFreq == 0 {
			continue
		}
		corpusIDF := math.Log(float64(totalDocs) / float64(docFreq))
		signals.IDF[tok.Index] = (1-corpusIDFWeight)*signals.IDF[tok.Index] + corpusIDFWeight*corpusIDF
	}
}

// recordCorpus adds the distinct word-token set of a successful compression
// to cfg.CorpusStore, so later compressions benefit from its
// document-frequency history. A Record failure never fails the compression
// itself — the corpus is a best-effort side channel — but it is logged
// rather than silently dropped.
func recordCorpus(ctx context.Context, cfg Config, tokens []tokenize.Token, logger logrus.FieldLogger) {
	texts := make([]string, len(tokens))
	for _, tok := range tokens {
		texts[tok.Index] = tok.Text
	}
	if err := cfg.CorpusStore.Record(ctx, texts); err != nil {
		logger.WithError(err).Warn("promptprune: failed to record corpus document")
	}
}
