package analyzer

import "wordseg/internal/domain"

// fakeSegmenter returns canned output and records which method was used.
type fakeSegmenter struct {
	precise []string
	full    []string
	search  []string
	calls   []string
	hmm     []bool
}

func (f *fakeSegmenter) Cut(text string, hmm bool) []string {
	f.calls = append(f.calls, "cut")
	f.hmm = append(f.hmm, hmm)
	return f.precise
}

func (f *fakeSegmenter) CutAll(text string) []string {
	f.calls = append(f.calls, "cut_all")
	return f.full
}

func (f *fakeSegmenter) CutForSearch(text string, hmm bool) []string {
	f.calls = append(f.calls, "cut_for_search")
	f.hmm = append(f.hmm, hmm)
	return f.search
}

type fakeKeywordSource struct {
	keywords []domain.Keyword
	topK     []int
}

func (f *fakeKeywordSource) ExtractWithWeight(text string, topK int) []domain.Keyword {
	f.topK = append(f.topK, topK)
	out := make([]domain.Keyword, len(f.keywords))
	copy(out, f.keywords)
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out
}

type fakeTagger struct {
	tags []domain.TaggedWord
}

func (f *fakeTagger) Tag(text string) []domain.TaggedWord {
	return f.tags
}
