package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"wordseg/internal/adapter/fs"
	"wordseg/internal/domain"
	"wordseg/internal/usecase"
)

var (
	batchIncludes []string
	batchExcludes []string
	batchOutput   string
	batchJSON     bool
	batchMode     string
)

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Segment every matching file under a directory",
	Long: `Segment and extract keywords from every file under the given directory
that matches the include globs and none of the exclude globs. Results are
written as JSON lines with --json or --output, otherwise as a summary.

Examples:
  wordseg batch .                          # Summary for ./**/*.txt and ./**/*.md
  wordseg batch ./corpus -o result.jsonl   # JSON lines to a file
  wordseg batch . --include "**/*.csv"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringSliceVar(&batchIncludes, "include", nil, "include globs (default from config)")
	batchCmd.Flags().StringSliceVar(&batchExcludes, "exclude", nil, "exclude globs (default from config)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write JSON lines to this file")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "write JSON lines to stdout")
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", "", "segmentation mode: precise, full, search (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if len(args) > 0 {
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	includes := cfg.Batch.Includes
	if len(batchIncludes) > 0 {
		includes = batchIncludes
	}
	excludes := cfg.Batch.Excludes
	if len(batchExcludes) > 0 {
		excludes = batchExcludes
	}
	walker := fs.NewWalker(includes, excludes)
	if err := walker.Validate(); err != nil {
		return err
	}

	modeName := cfg.Tokenize.Mode
	if batchMode != "" {
		modeName = batchMode
	}
	opts := usecase.BatchOptions{
		Mode:            resolveMode(modeName),
		RemoveStopwords: cfg.Tokenize.RemoveStopwords,
		TopK:            cfg.Keywords.TopK,
	}

	an, err := openAnalyzers(cfg, cfg.Keywords.AllowPOS)
	if err != nil {
		return err
	}
	defer an.Close()

	batchUC := usecase.NewBatchUseCase(walker, walker, an.tokenizer, an.extractor)

	fmt.Fprintf(cmd.ErrOrStderr(), "Scanning %s...\n", path)

	// The bar is created on the first callback, once the file count is known.
	var bar *progressbar.ProgressBar
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Segmenting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Segmenting[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := batchUC.Run(path, opts, progressCallback)
	if err != nil {
		return fmt.Errorf("batch segmentation failed: %w", err)
	}

	switch {
	case batchOutput != "":
		f, err := os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := writeJSONLines(f, result.Files); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Results written to: %s\n", batchOutput)
	case batchJSON:
		if err := writeJSONLines(cmd.OutOrStdout(), result.Files); err != nil {
			return err
		}
	default:
		printBatchSummary(cmd.OutOrStdout(), path, result, cfg.Batch.Preview)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", e)
		}
	}
	return nil
}

func writeJSONLines(w io.Writer, files []domain.FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, f := range files {
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", f.Path, err)
		}
	}
	return nil
}

func printBatchSummary(w io.Writer, root string, result *domain.BatchResult, preview int) {
	for _, f := range result.Files {
		rel, err := filepath.Rel(root, f.Path)
		if err != nil {
			rel = f.Path
		}
		fmt.Fprintf(w, "--- %s (%d tokens) ---\n", rel, len(f.Tokens))
		fmt.Fprintf(w, "  tokens:   %s\n", usecase.FormatTokens(usecase.Head(f.Tokens, preview)))
		fmt.Fprintf(w, "  keywords: %s\n", usecase.FormatTokens(f.Keywords.Words()))
	}

	fmt.Fprintf(w, "\nBatch complete:\n")
	fmt.Fprintf(w, "  Files processed: %d\n", result.FilesProcessed)
	fmt.Fprintf(w, "  Files failed:    %d\n", result.FilesFailed)
	fmt.Fprintf(w, "  Tokens:          %d\n", result.TokensTotal)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
