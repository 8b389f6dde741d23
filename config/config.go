package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for wordseg.
type Config struct {
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Tokenize  TokenizeConfig  `yaml:"tokenize"`
	Keywords  KeywordsConfig  `yaml:"keywords"`
	Batch     BatchConfig     `yaml:"batch"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SegmenterConfig selects and configures the segmentation backend.
type SegmenterConfig struct {
	Backend  string `yaml:"backend"`   // "jieba", "gse"
	HMM      bool   `yaml:"hmm"`       // new-word discovery for unknown words
	DictDir  string `yaml:"dict_dir"`  // jieba dictionary directory, empty = bundled
	UserDict string `yaml:"user_dict"` // extra user dictionary file
}

// TokenizeConfig holds tokenization defaults.
type TokenizeConfig struct {
	Mode            string   `yaml:"mode"` // "precise", "full", "search"
	RemoveStopwords bool     `yaml:"remove_stopwords"`
	ExtraStopwords  []string `yaml:"extra_stopwords"`
	StopwordsFile   string   `yaml:"stopwords_file"`
}

// KeywordsConfig holds keyword extraction defaults.
type KeywordsConfig struct {
	TopK       int      `yaml:"top_k"`
	WithWeight bool     `yaml:"with_weight"`
	AllowPOS   []string `yaml:"allow_pos"` // empty = no part-of-speech restriction
}

// BatchConfig holds batch segmentation configuration.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Preview  int      `yaml:"preview"` // tokens shown per file in text output
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Segmenter: SegmenterConfig{
			Backend: "jieba",
			HMM:     true,
		},
		Tokenize: TokenizeConfig{
			Mode:            "precise",
			RemoveStopwords: true,
		},
		Keywords: KeywordsConfig{
			TopK:       5,
			WithWeight: false,
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
			Preview:  20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for wordseg.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "wordseg.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".wordseg", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
