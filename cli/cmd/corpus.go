package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	ppconfig "github.com/vippsas/promptprune/internal/config"
	"github.com/vippsas/promptprune/internal/corpus"
)

// openCorpusStore opens the backend named by corpusCfg.Backend, mirroring
// the teacher's DatabaseConfig.Open dialect switch in cli/cmd/config.go.
func openCorpusStore(corpusCfg ppconfig.CorpusConfig) (corpus.Store, error) {
	switch corpusCfg.Backend {
	case "", "memory":
		return corpus.NewMemStore(), nil
	case "postgres":
		db, err := corpus.OpenPostgres(corpusCfg.DSN)
		if err != nil {
			return nil, err
		}
		return corpus.NewPGStore(db, corpusCfg.Table), nil
	case "mssql":
		db, err := corpus.OpenSocks5MSSQL(corpusCfg.DSN)
		if err != nil {
			return nil, err
		}
		return corpus.NewMSSQLStore(db, corpusCfg.Table), nil
	default:
		return nil, errors.Errorf("corpus: unknown backend %q", corpusCfg.Backend)
	}
}

var (
	corpusCmd = &cobra.Command{
		Use:   "corpus",
		Short: "Inspect the persisted cross-document IDF corpus",
	}

	corpusStatsCmd = &cobra.Command{
		Use:   "stats <token>",
		Short: "Print the document frequency of a token in the configured corpus backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("expected exactly one token argument")
			}

			_, corpusCfg := loadConfig()
			store, err := openCorpusStore(corpusCfg)
			if err != nil {
				return err
			}

			docFreq, totalDocs, err := store.DocFreq(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: doc_freq=%d total_docs=%d\n", args[0], docFreq, totalDocs)
			return nil
		},
	}
)

func init() {
	corpusCmd.AddCommand(corpusStatsCmd)
	rootCmd.AddCommand(corpusCmd)
}
