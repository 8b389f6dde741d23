package usecase

import (
	"errors"
	"strings"

	"wordseg/internal/domain"
	"wordseg/internal/port"
)

// spaceTokenizer splits on whitespace and records the modes it was asked for.
type spaceTokenizer struct {
	modes []domain.Mode
}

func (s *spaceTokenizer) Tokenize(text string, mode domain.Mode, removeStopwords bool) []string {
	s.modes = append(s.modes, mode)
	tokens := strings.Fields(text)
	if tokens == nil {
		return []string{}
	}
	if mode == domain.ModeFull {
		tokens = append(tokens, tokens...)
	}
	return tokens
}

type staticExtractor struct {
	keywords domain.Keywords
}

func (s *staticExtractor) Extract(text string, topK int) domain.Keywords {
	if strings.TrimSpace(text) == "" {
		return domain.Keywords{}
	}
	if topK > 0 && len(s.keywords) > topK {
		return s.keywords[:topK]
	}
	return s.keywords
}

func (s *staticExtractor) ExtractWords(text string, topK int) []string {
	return s.Extract(text, topK).Words()
}

type memFS struct {
	files   map[string]string
	order   []string
	walkErr error
}

func (m *memFS) Walk(root string) ([]port.FileInfo, error) {
	if m.walkErr != nil {
		return nil, m.walkErr
	}
	infos := make([]port.FileInfo, 0, len(m.order))
	for _, p := range m.order {
		infos = append(infos, port.FileInfo{Path: p, Size: int64(len(m.files[p]))})
	}
	return infos, nil
}

func (m *memFS) ReadFile(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", errors.New("permission denied")
	}
	return content, nil
}
