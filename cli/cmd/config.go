package cmd

import (
	"fmt"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vippsas/promptprune"
	ppconfig "github.com/vippsas/promptprune/internal/config"
)

func configPath() string {
	return path.Join(directory, "promptprune.yaml")
}

// loadConfig loads promptprune.yaml from --directory, falling back to
// DefaultConfig when no file is present — unlike the teacher's sqlcode,
// which hard-requires sqlcode.yaml, promptprune is usable with no config
// file at all.
func loadConfig() (promptprune.Config, ppconfig.CorpusConfig) {
	cfg, corpusCfg, err := ppconfig.Load(configPath())
	if err != nil {
		return promptprune.DefaultConfig(), ppconfig.CorpusConfig{}
	}
	return cfg, corpusCfg
}

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, sourced from promptprune.yaml if present",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			cfg, corpusCfg := loadConfig()
			fmt.Printf("target_ratio: %v\n", cfg.TargetRatio)
			fmt.Printf("weights: idf=%v position=%v pos=%v entity=%v entropy=%v\n",
				cfg.IDFWeight, cfg.PositionWeight, cfg.POSWeight, cfg.EntityWeight, cfg.EntropyWeight)
			fmt.Printf("enable_protection_masks: %v\n", cfg.EnableProtectionMasks)
			fmt.Printf("enable_contextual_stopwords: %v\n", cfg.EnableContextualStopwords)
			fmt.Printf("preserve_negations: %v\n", cfg.PreserveNegations)
			fmt.Printf("preserve_comparators: %v\n", cfg.PreserveComparators)
			fmt.Printf("domain_terms: %v\n", cfg.DomainTerms)
			fmt.Printf("min_gap_between_critical: %v\n", cfg.MinGapBetweenCritical)
			fmt.Printf("min_input_tokens: %v\n", cfg.MinInputTokens)
			fmt.Printf("min_input_bytes: %v\n", cfg.MinInputBytes)
			if corpusCfg.Backend != "" {
				fmt.Printf("corpus: backend=%s table=%s\n", corpusCfg.Backend, corpusCfg.Table)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
}
