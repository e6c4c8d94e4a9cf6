// Package config loads promptprune's YAML configuration file, mirroring the
// teacher's cli/cmd/config.go LoadConfig/DatabaseConfig shape.
package config

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/vippsas/promptprune"
)

// CorpusConfig describes how to reach the optional persisted IDF corpus
// (internal/corpus), translated from the teacher's DatabaseConfig.
type CorpusConfig struct {
	Backend string `yaml:"backend"` // "memory" (default), "postgres", or "mssql"
	DSN     string `yaml:"dsn"`
	Table   string `yaml:"table"`
}

// File is the on-disk shape of promptprune.yaml.
type File struct {
	TargetRatio float64 `yaml:"target_ratio"`

	IDFWeight      float64 `yaml:"idf_weight"`
	PositionWeight float64 `yaml:"position_weight"`
	POSWeight      float64 `yaml:"pos_weight"`
	EntityWeight   float64 `yaml:"entity_weight"`
	EntropyWeight  float64 `yaml:"entropy_weight"`

	EnableProtectionMasks     *bool `yaml:"enable_protection_masks"`
	EnableContextualStopwords *bool `yaml:"enable_contextual_stopwords"`
	PreserveNegations         *bool `yaml:"preserve_negations"`
	PreserveComparators       *bool `yaml:"preserve_comparators"`

	DomainTerms           []string `yaml:"domain_terms"`
	MinGapBetweenCritical int      `yaml:"min_gap_between_critical"`
	MinInputTokens        int      `yaml:"min_input_tokens"`
	MinInputBytes         int      `yaml:"min_input_bytes"`

	Corpus CorpusConfig `yaml:"corpus"`
}

// Load reads filename (a promptprune.yaml) and merges it over
// promptprune.DefaultConfig(); any field absent from the file keeps its
// default. Returns the merged compression Config plus the corpus backend
// settings, which the caller wires into internal/corpus separately since
// opening a database connection is not this package's concern.
func Load(filename string) (promptprune.Config, CorpusConfig, error) {
	cfg := promptprune.DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return promptprune.Config{}, CorpusConfig{}, errors.New("no " + path.Base(filename) + " found at " + filename)
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return promptprune.Config{}, CorpusConfig{}, err
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return promptprune.Config{}, CorpusConfig{}, err
	}

	applyOverrides(&cfg, f)
	return cfg, f.Corpus, nil
}

func applyOverrides(cfg *promptprune.Config, f File) {
	if f.TargetRatio != 0 {
		cfg.TargetRatio = f.TargetRatio
	}
	if f.IDFWeight != 0 {
		cfg.IDFWeight = f.IDFWeight
	}
	if f.PositionWeight != 0 {
		cfg.PositionWeight = f.PositionWeight
	}
	if f.POSWeight != 0 {
		cfg.POSWeight = f.POSWeight
	}
	if f.EntityWeight != 0 {
		cfg.EntityWeight = f.EntityWeight
	}
	if f.EntropyWeight != 0 {
		cfg.EntropyWeight = f.EntropyWeight
	}
	if f.EnableProtectionMasks != nil {
		cfg.EnableProtectionMasks = *f.EnableProtectionMasks
	}
	if f.EnableContextualStopwords != nil {
		cfg.EnableContextualStopwords = *f.EnableContextualStopwords
	}
	if f.PreserveNegations != nil {
		cfg.PreserveNegations = *f.PreserveNegations
	}
	if f.PreserveComparators != nil {
		cfg.PreserveComparators = *f.PreserveComparators
	}
	if len(f.DomainTerms) > 0 {
		cfg.DomainTerms = f.DomainTerms
	}
	if f.MinGapBetweenCritical != 0 {
		cfg.MinGapBetweenCritical = f.MinGapBetweenCritical
	}
	if f.MinInputTokens != 0 {
		cfg.MinInputTokens = f.MinInputTokens
	}
	if f.MinInputBytes != 0 {
		cfg.MinInputBytes = f.MinInputBytes
	}
}
