package port

import "wordseg/internal/domain"

// Segmenter is the external word-segmentation capability.
type Segmenter interface {
	// Cut returns the single best segmentation of text.
	Cut(text string, hmm bool) []string

	// CutAll returns every dictionary word found in text; tokens may overlap.
	CutAll(text string) []string

	// CutForSearch is Cut with long words split again into dictionary sub-words.
	CutForSearch(text string, hmm bool) []string
}

// KeywordSource ranks the terms of a text by TF-IDF weight, highest first.
type KeywordSource interface {
	ExtractWithWeight(text string, topK int) []domain.Keyword
}

// Tagger assigns a part-of-speech tag to each word of a text.
type Tagger interface {
	Tag(text string) []domain.TaggedWord
}
