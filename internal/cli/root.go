package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"wordseg/config"
	"wordseg/internal/logger"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
)

var log = logger.NewLogger("cli")

var rootCmd = &cobra.Command{
	Use:   "wordseg",
	Short: "Chinese word segmentation and keyword extraction",
	Long: `wordseg segments Chinese text with jieba (or gse) in precise, full or
search mode, filters stop words, and extracts TF-IDF keywords.

Run without a subcommand to print the sample report.

Example usage:
  wordseg                                   # Sample report
  wordseg cut -m search "自然语言处理"        # Segment text
  wordseg keywords -k 5 -w < article.txt    # Top keywords with weights
  wordseg batch ./corpus --json             # Segment every .txt/.md file`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		logger.SetLevel(level)
		log.Debugw("config loaded", "file", cfgFile, "dir", rootDir, "backend", cfg.Segmenter.Backend)

		return nil
	},
	RunE: runDemo,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./wordseg.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "directory searched for config (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

func GetConfig() *config.Config {
	return cfg
}
