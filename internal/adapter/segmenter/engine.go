package segmenter

import (
	"fmt"
	"strings"
	"time"

	"wordseg/config"
	"wordseg/internal/logger"
	"wordseg/internal/port"
)

var log = logger.NewLogger("segmenter")

// Engine bundles the external capabilities selected by configuration.
type Engine struct {
	Segmenter port.Segmenter
	Keywords  port.KeywordSource
	Tagger    port.Tagger

	jieba *Jieba
}

// Open creates the backends named by cfg.Backend. Keyword extraction and
// tagging always use jieba, which ships the IDF corpus.
func Open(cfg config.SegmenterConfig) (*Engine, error) {
	start := time.Now()
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))

	var seg port.Segmenter
	var jb *Jieba
	switch backend {
	case "", "jieba":
		var err error
		jb, err = NewJieba(cfg.DictDir, cfg.UserDict)
		if err != nil {
			return nil, err
		}
		seg = jb
	case "gse":
		g, err := NewGse(cfg.UserDict)
		if err != nil {
			return nil, err
		}
		seg = g
		jb, err = NewJieba(cfg.DictDir, "")
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported segmenter backend: %s", cfg.Backend)
	}

	log.Debugw("segmenter ready", "backend", backend, "hmm", cfg.HMM, "elapsed", time.Since(start).String())
	return &Engine{
		Segmenter: seg,
		Keywords:  jb,
		Tagger:    jb,
		jieba:     jb,
	}, nil
}

func (e *Engine) Close() error {
	if e.jieba != nil {
		return e.jieba.Close()
	}
	return nil
}
