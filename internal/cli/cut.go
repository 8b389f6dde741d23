package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	cutMode          string
	cutKeepStopwords bool
	cutJSON          bool
	cutSep           string
)

var cutCmd = &cobra.Command{
	Use:   "cut [text...]",
	Short: "Segment text into words",
	Long: `Segment text in precise, full or search mode. Arguments are joined
with spaces and segmented as one text; without arguments each line of stdin
is segmented separately and blank lines are skipped.

Unknown modes segment as precise.

Examples:
  wordseg cut "我喜欢用Python进行自然语言处理"
  wordseg cut -m full --keep-stopwords "自然语言处理"
  cat corpus.txt | wordseg cut --json`,
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)
	cutCmd.Flags().StringVarP(&cutMode, "mode", "m", "", "segmentation mode: precise, full, search (default from config)")
	cutCmd.Flags().BoolVar(&cutKeepStopwords, "keep-stopwords", false, "return the raw segmentation without stop-word filtering")
	cutCmd.Flags().BoolVar(&cutJSON, "json", false, "output each result as a JSON array")
	cutCmd.Flags().StringVar(&cutSep, "sep", " / ", "token separator for text output")
}

func runCut(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	modeName := cfg.Tokenize.Mode
	if cutMode != "" {
		modeName = cutMode
	}
	mode := resolveMode(modeName)
	remove := cfg.Tokenize.RemoveStopwords && !cutKeepStopwords

	an, err := openAnalyzers(cfg, nil)
	if err != nil {
		return err
	}
	defer an.Close()

	out := cmd.OutOrStdout()
	emit := func(text string) error {
		tokens := an.tokenizer.Tokenize(text, mode, remove)
		if cutJSON {
			data, err := json.Marshal(tokens)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}
		_, err := fmt.Fprintln(out, strings.Join(tokens, cutSep))
		return err
	}

	if len(args) > 0 {
		return emit(strings.Join(args, " "))
	}
	return eachLine(cmd.InOrStdin(), emit)
}

// eachLine calls fn for every non-blank line of r.
func eachLine(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
