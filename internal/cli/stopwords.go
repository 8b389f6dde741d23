package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Print the effective stop-word set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, err := loadStopWords(GetConfig())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d stop words:\n%s\n", sw.Len(), strings.Join(sw.Words(), " "))
		return err
	},
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
}
