package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	kwTopK       int
	kwWithWeight bool
	kwJSON       bool
	kwAllowPOS   []string
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text...]",
	Short: "Extract TF-IDF keywords",
	Long: `Extract the top keywords of a text ranked by TF-IDF weight. Arguments
are joined with spaces; without arguments all of stdin is read as one text.

Examples:
  wordseg keywords -k 5 "自然语言处理是人工智能领域的一个重要分支"
  wordseg keywords -w --json < article.txt
  wordseg keywords --allow-pos n,vn < article.txt`,
	RunE: runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
	keywordsCmd.Flags().IntVarP(&kwTopK, "top-k", "k", 0, "number of keywords (default from config)")
	keywordsCmd.Flags().BoolVarP(&kwWithWeight, "with-weight", "w", false, "include TF-IDF weights (default from config)")
	keywordsCmd.Flags().BoolVar(&kwJSON, "json", false, "output as JSON")
	keywordsCmd.Flags().StringSliceVar(&kwAllowPOS, "allow-pos", nil, "only keep words with these part-of-speech tags (default from config)")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	topK := cfg.Keywords.TopK
	if kwTopK > 0 {
		topK = kwTopK
	}
	withWeight := cfg.Keywords.WithWeight
	if cmd.Flags().Changed("with-weight") {
		withWeight = kwWithWeight
	}
	allowPOS := cfg.Keywords.AllowPOS
	if cmd.Flags().Changed("allow-pos") {
		allowPOS = kwAllowPOS
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = string(data)
	}

	an, err := openAnalyzers(cfg, allowPOS)
	if err != nil {
		return err
	}
	defer an.Close()

	keywords := an.extractor.Extract(text, topK)
	out := cmd.OutOrStdout()

	if kwJSON {
		var v any = keywords.Words()
		if withWeight {
			v = keywords
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	if len(keywords) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No keywords found.")
		return nil
	}
	for i, k := range keywords {
		if withWeight {
			fmt.Fprintf(out, "%d. %s\t%.4f\n", i+1, k.Word, k.Weight)
		} else {
			fmt.Fprintf(out, "%d. %s\n", i+1, k.Word)
		}
	}
	return nil
}
