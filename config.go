package promptprune

import (
	"github.com/vippsas/promptprune/internal/corpus"
	"github.com/vippsas/promptprune/internal/tokencount"
)

// Config holds the compression-time options of spec.md §6. The zero value
// is not usable; construct with DefaultConfig and override only what the
// caller needs, matching the teacher's YAML-unmarshalled Config shape in
// cli/cmd/config.go.
type Config struct {
	TargetRatio float64 `yaml:"target_ratio"`

	IDFWeight      float64 `yaml:"idf_weight"`
	PositionWeight float64 `yaml:"position_weight"`
	POSWeight      float64 `yaml:"pos_weight"`
	EntityWeight   float64 `yaml:"entity_weight"`
	EntropyWeight  float64 `yaml:"entropy_weight"`

	EnableProtectionMasks     bool `yaml:"enable_protection_masks"`
	EnableContextualStopwords bool `yaml:"enable_contextual_stopwords"`
	PreserveNegations         bool `yaml:"preserve_negations"`
	PreserveComparators       bool `yaml:"preserve_comparators"`

	DomainTerms           []string `yaml:"domain_terms"`
	MinGapBetweenCritical int      `yaml:"min_gap_between_critical"`
	MinInputTokens        int      `yaml:"min_input_tokens"`
	MinInputBytes         int      `yaml:"min_input_bytes"`

	// Counter is the external tokenizer collaborator of spec.md §6, used
	// only to report pre/post token counts and to run the gain check. It
	// never influences selection. Defaults to tokencount.Stub.
	Counter tokencount.Counter `yaml:"-"`

	// CorpusStore, if non-nil, folds a cross-document IDF signal into
	// scoring in addition to the single-document IDF scorer spec.md §4.3
	// defines. Nil (the default) reproduces spec.md's scoring exactly.
	CorpusStore corpus.Store `yaml:"-"`
}

// DefaultConfig returns the configuration defaults tabulated in spec.md §6.
func DefaultConfig() Config {
	return Config{
		TargetRatio:               0.5,
		IDFWeight:                 0.3,
		PositionWeight:            0.2,
		POSWeight:                 0.2,
		EntityWeight:              0.2,
		EntropyWeight:             0.1,
		EnableProtectionMasks:     true,
		EnableContextualStopwords: true,
		PreserveNegations:         true,
		PreserveComparators:       true,
		DomainTerms:               []string{"Vectorizer", "Synap", "UMICP", "Graphs"},
		MinGapBetweenCritical:     3,
		MinInputTokens:            100,
		MinInputBytes:             1024,
		Counter:                   tokencount.Stub{},
	}
}

// Format identifies the output encoding of a CompressionResult.
type Format int

const (
	FormatText Format = iota
	FormatImage
)

// CompressionResult is the outcome of a successful compression (spec.md
// §3). Ratio is CompressedTokens/OriginalTokens using Counter's counts, not
// the word count used internally for selection.
type CompressionResult struct {
	Compressed       string
	OriginalTokens   uint32
	CompressedTokens uint32
	Ratio            float32
	TokensRemoved    uint32
	Format           Format
	ImageBytes       []byte
}
