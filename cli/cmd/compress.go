package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/promptprune"
	"github.com/vippsas/promptprune/internal/classify"
	"github.com/vippsas/promptprune/internal/fuse"
	"github.com/vippsas/promptprune/internal/metrics"
	"github.com/vippsas/promptprune/internal/score"
	"github.com/vippsas/promptprune/internal/span"
	"github.com/vippsas/promptprune/internal/tokenize"
)

var (
	compressFile   string
	compressReport bool

	compressCmd = &cobra.Command{
		Use:   "compress",
		Short: "Compress a prompt read from --file or stdin and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return fmt.Errorf("too many arguments")
			}

			input, err := readCompressInput()
			if err != nil {
				return err
			}

			cfg, _ := loadConfig()

			logger := logrus.New()
			if debug {
				logger.SetLevel(logrus.DebugLevel)
				dumpScores(cfg, input)
			}

			result, err := promptprune.Compress(context.Background(), cfg, input, logger)
			if err != nil {
				return err
			}

			fmt.Println(result.Compressed)
			fmt.Fprintf(os.Stderr, "original_tokens=%d compressed_tokens=%d ratio=%.3f tokens_removed=%d\n",
				result.OriginalTokens, result.CompressedTokens, result.Ratio, result.TokensRemoved)

			if compressReport {
				report := metrics.Evaluate(input, result.Compressed, cfg.DomainTerms,
					cfg.EnableProtectionMasks, cfg.TargetRatio, result.Ratio)
				metrics.Log(logger, report)
			}
			return nil
		},
	}
)

func readCompressInput() (string, error) {
	if compressFile != "" {
		data, err := os.ReadFile(compressFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// dumpScores prints the per-token signal and final scores that Compress
// would use, before selection runs, using repr for the same readable
// struct dump the teacher's sqltest.querydump.go uses for result rows.
func dumpScores(cfg promptprune.Config, input string) {
	normalized := tokenize.Normalize(input)
	spans := span.Detect(normalized, cfg.EnableProtectionMasks)
	tokens := tokenize.Split(normalized)
	signals := score.Compute(tokens, cfg.EnableContextualStopwords)
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

	type tokenDump struct {
		Text  string
		Final float64
	}
	dumps := make([]tokenDump, len(tokens))
	for _, tok := range tokens {
		dumps[tok.Index] = tokenDump{Text: tok.Text, Final: final[tok.Index]}
	}
	repr.Println(dumps)
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 40))
}

func init() {
	compressCmd.Flags().StringVarP(&compressFile, "file", "f", "", "read the prompt from this file instead of stdin")
	compressCmd.Flags().BoolVar(&compressReport, "report", false, "log a quality report (must-keep and protected-span retention) after compressing")
	rootCmd.AddCommand(compressCmd)
}
