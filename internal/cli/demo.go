package cli

import (
	"github.com/spf13/cobra"
	"wordseg/internal/usecase"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the sample segmentation and keyword report",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	an, err := openAnalyzers(GetConfig(), nil)
	if err != nil {
		return err
	}
	defer an.Close()

	demo := usecase.NewDemoUseCase(an.tokenizer, an.extractor)
	return demo.Run(cmd.OutOrStdout(), usecase.ShortSample, usecase.LongSample)
}
