package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "promptprune",
		Short:        "promptprune",
		SilenceUsage: true,
		Long:         `CLI tool for compressing LLM prompts while preserving semantic-critical content.`,
	}

	directory string
	debug     bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory to look for promptprune.yaml in")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print per-token scores before selection")
	return rootCmd.Execute()
}

func init() {
}
