package analyzer

import (
	"strings"

	"wordseg/internal/domain"
	"wordseg/internal/port"
)

// Tokenizer segments text through an external Segmenter and filters the
// result against a stop-word set.
type Tokenizer struct {
	seg       port.Segmenter
	stopwords *StopWords
	hmm       bool
}

// NewTokenizer creates a new Tokenizer. A nil stopwords uses the built-in set.
func NewTokenizer(seg port.Segmenter, stopwords *StopWords, hmm bool) *Tokenizer {
	if stopwords == nil {
		stopwords = DefaultStopWords()
	}
	return &Tokenizer{
		seg:       seg,
		stopwords: stopwords,
		hmm:       hmm,
	}
}

// Tokenize splits text into tokens using mode. Unknown modes segment as
// ModePrecise. Blank text yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string, mode domain.Mode, removeStopwords bool) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var words []string
	switch mode {
	case domain.ModeFull:
		words = t.seg.CutAll(text)
	case domain.ModeSearch:
		words = t.seg.CutForSearch(text, t.hmm)
	default:
		words = t.seg.Cut(text, t.hmm)
	}

	if !removeStopwords {
		if words == nil {
			return []string{}
		}
		return words
	}
	return t.filter(words)
}

// filter trims each token and drops blanks and stop words, keeping order.
func (t *Tokenizer) filter(words []string) []string {
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if t.stopwords.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func (t *Tokenizer) StopWords() *StopWords {
	return t.stopwords
}
