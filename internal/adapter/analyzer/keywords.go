package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"wordseg/internal/domain"
	"wordseg/internal/port"
)

// KeywordExtractor ranks the terms of a text with an external TF-IDF source.
type KeywordExtractor struct {
	source   port.KeywordSource
	tagger   port.Tagger
	allowPOS map[string]struct{}
}

// NewKeywordExtractor creates a new KeywordExtractor. An empty allowPOS
// places no part-of-speech restriction on candidates, and tagger may then be nil.
func NewKeywordExtractor(source port.KeywordSource, tagger port.Tagger, allowPOS []string) *KeywordExtractor {
	var allowed map[string]struct{}
	for _, pos := range allowPOS {
		pos = strings.TrimSpace(pos)
		if pos == "" {
			continue
		}
		if allowed == nil {
			allowed = make(map[string]struct{})
		}
		allowed[pos] = struct{}{}
	}
	return &KeywordExtractor{
		source:   source,
		tagger:   tagger,
		allowPOS: allowed,
	}
}

// Extract returns at most topK keywords with their weights, highest first.
// topK <= 0 returns every candidate.
func (e *KeywordExtractor) Extract(text string, topK int) domain.Keywords {
	if strings.TrimSpace(text) == "" {
		return domain.Keywords{}
	}

	limit := topK
	if limit <= 0 || e.restricted() {
		// no text has more candidate terms than runes
		limit = utf8.RuneCountInString(text)
	}

	keywords := domain.Keywords(e.source.ExtractWithWeight(text, limit))
	if e.restricted() {
		keywords = e.filterPOS(text, keywords)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Weight > keywords[j].Weight
	})
	if topK > 0 && len(keywords) > topK {
		keywords = keywords[:topK]
	}
	if keywords == nil {
		return domain.Keywords{}
	}
	return keywords
}

// ExtractWords is Extract without weights.
func (e *KeywordExtractor) ExtractWords(text string, topK int) []string {
	return e.Extract(text, topK).Words()
}

func (e *KeywordExtractor) restricted() bool {
	return len(e.allowPOS) > 0 && e.tagger != nil
}

// filterPOS keeps keywords tagged with an allowed part of speech somewhere in text.
func (e *KeywordExtractor) filterPOS(text string, keywords domain.Keywords) domain.Keywords {
	allowedWords := make(map[string]struct{})
	for _, tw := range e.tagger.Tag(text) {
		if _, ok := e.allowPOS[tw.POS]; ok {
			allowedWords[tw.Word] = struct{}{}
		}
	}

	filtered := make(domain.Keywords, 0, len(keywords))
	for _, k := range keywords {
		if _, ok := allowedWords[k.Word]; ok {
			filtered = append(filtered, k)
		}
	}
	return filtered
}
