package port

import "wordseg/internal/domain"

type Tokenizer interface {
	Tokenize(text string, mode domain.Mode, removeStopwords bool) []string
}

type KeywordExtractor interface {
	Extract(text string, topK int) domain.Keywords

	ExtractWords(text string, topK int) []string
}
