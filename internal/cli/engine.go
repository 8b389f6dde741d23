package cli

import (
	"fmt"

	"wordseg/config"
	"wordseg/internal/adapter/analyzer"
	"wordseg/internal/adapter/segmenter"
	"wordseg/internal/domain"
)

// analyzers is the tokenizer and keyword extractor over one opened engine.
type analyzers struct {
	engine    *segmenter.Engine
	tokenizer *analyzer.Tokenizer
	extractor *analyzer.KeywordExtractor
}

func openAnalyzers(cfg *config.Config, allowPOS []string) (*analyzers, error) {
	stopwords, err := loadStopWords(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := segmenter.Open(cfg.Segmenter)
	if err != nil {
		return nil, fmt.Errorf("failed to open segmenter: %w", err)
	}

	return &analyzers{
		engine:    engine,
		tokenizer: analyzer.NewTokenizer(engine.Segmenter, stopwords, cfg.Segmenter.HMM),
		extractor: analyzer.NewKeywordExtractor(engine.Keywords, engine.Tagger, allowPOS),
	}, nil
}

// loadStopWords extends the built-in set with configured words.
func loadStopWords(cfg *config.Config) (*analyzer.StopWords, error) {
	extra := append([]string{}, cfg.Tokenize.ExtraStopwords...)
	if cfg.Tokenize.StopwordsFile != "" {
		words, err := analyzer.LoadStopWordsFile(cfg.Tokenize.StopwordsFile)
		if err != nil {
			return nil, err
		}
		extra = append(extra, words...)
	}
	return analyzer.NewStopWords(extra...), nil
}

func (a *analyzers) Close() error {
	return a.engine.Close()
}

// resolveMode falls back to precise for unknown names without failing.
func resolveMode(name string) domain.Mode {
	mode, ok := domain.LookupMode(name)
	if !ok {
		log.Debugw("unrecognized mode, using precise", "mode", name)
	}
	return mode
}
