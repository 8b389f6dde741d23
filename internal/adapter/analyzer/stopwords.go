package analyzer

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

var defaultStopwordList = []string{
	"的", "了", "是", "我", "你", "他", "她", "它", "们", "在", "和", "有", "就",
	"不", "也", "都", "而", "及", "与", "之", "于", "着", "过", "呢", "吗", "吧",
	"啊", "哦", "嗯", "这", "那", "此", "彼", "其", "所", "把", "被", "为", "因",
	"以", "对", "对于", "关于", "通过", "随着", "按照", "基于", "个", "只", "条",
}

var defaultStopwords = newStopWords(defaultStopwordList)

// StopWords is an immutable set of words dropped from tokenizer output.
type StopWords struct {
	set map[string]struct{}
}

// DefaultStopWords returns the built-in set. It is shared and never modified.
func DefaultStopWords() *StopWords {
	return defaultStopwords
}

// NewStopWords returns the built-in set extended with extra.
// Blank entries are ignored.
func NewStopWords(extra ...string) *StopWords {
	if len(extra) == 0 {
		return defaultStopwords
	}
	words := make([]string, 0, len(defaultStopwordList)+len(extra))
	words = append(words, defaultStopwordList...)
	words = append(words, extra...)
	return newStopWords(words)
}

func newStopWords(words []string) *StopWords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return &StopWords{set: m}
}

func (s *StopWords) Contains(word string) bool {
	_, ok := s.set[word]
	return ok
}

func (s *StopWords) Len() int {
	return len(s.set)
}

// Words returns the members in sorted order.
func (s *StopWords) Words() []string {
	words := make([]string, 0, len(s.set))
	for w := range s.set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// LoadStopWordsFile reads one word per line. Blank lines and lines starting
// with '#' are skipped.
func LoadStopWordsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop-word file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop-word file: %w", err)
	}
	return words, nil
}
