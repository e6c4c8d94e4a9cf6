package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/promptprune"
)

var (
	renderFile string
	renderOut  string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Compress a prompt and rasterize the result to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return fmt.Errorf("too many arguments")
			}

			var input []byte
			var err error
			if renderFile != "" {
				input, err = os.ReadFile(renderFile)
			} else {
				input, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}

			cfg, _ := loadConfig()
			result, err := promptprune.Compress(context.Background(), cfg, string(input), logrus.New())
			if err != nil {
				return err
			}

			result, err = promptprune.RenderImage(result)
			if err != nil {
				return err
			}

			if err := os.WriteFile(renderOut, result.ImageBytes, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", renderOut, len(result.ImageBytes))
			return nil
		},
	}
)

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "read the prompt from this file instead of stdin")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "compressed.png", "output PNG path")
	rootCmd.AddCommand(renderCmd)
}
