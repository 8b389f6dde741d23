package segmenter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/yanyiwu/gojieba"
	"wordseg/internal/domain"
)

// Jieba wraps a gojieba handle. It serves segmentation, TF-IDF keyword
// extraction and part-of-speech tagging.
type Jieba struct {
	jb *gojieba.Jieba
}

// NewJieba opens jieba with the bundled dictionaries, or those found in
// dictDir when set. userDict, when set, replaces the user dictionary.
// Missing dictionary files are reported as errors; gojieba itself panics.
func NewJieba(dictDir, userDict string) (*Jieba, error) {
	dict, hmm, user, idf, stop := gojieba.DICT_PATH, gojieba.HMM_PATH, gojieba.USER_DICT_PATH, gojieba.IDF_PATH, gojieba.STOP_WORDS_PATH
	if dictDir != "" {
		dict = filepath.Join(dictDir, "jieba.dict.utf8")
		hmm = filepath.Join(dictDir, "hmm_model.utf8")
		user = filepath.Join(dictDir, "user.dict.utf8")
		idf = filepath.Join(dictDir, "idf.utf8")
		stop = filepath.Join(dictDir, "stop_words.utf8")
	}
	if userDict != "" {
		user = userDict
	}
	for _, path := range []string{dict, hmm, user, idf, stop} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("jieba dictionary unavailable: %w", err)
		}
	}
	return &Jieba{jb: gojieba.NewJieba(dict, hmm, user, idf, stop)}, nil
}

func (j *Jieba) Cut(text string, hmm bool) []string {
	return j.jb.Cut(text, hmm)
}

func (j *Jieba) CutAll(text string) []string {
	return j.jb.CutAll(text)
}

func (j *Jieba) CutForSearch(text string, hmm bool) []string {
	return j.jb.CutForSearch(text, hmm)
}

func (j *Jieba) ExtractWithWeight(text string, topK int) []domain.Keyword {
	weights := j.jb.ExtractWithWeight(text, topK)
	keywords := make([]domain.Keyword, len(weights))
	for i, w := range weights {
		keywords[i] = domain.Keyword{Word: w.Word, Weight: w.Weight}
	}
	return keywords
}

// Tag splits gojieba's "word/pos" output.
func (j *Jieba) Tag(text string) []domain.TaggedWord {
	raw := j.jb.Tag(text)
	tagged := make([]domain.TaggedWord, 0, len(raw))
	for _, item := range raw {
		idx := strings.LastIndex(item, "/")
		if idx < 0 {
			tagged = append(tagged, domain.TaggedWord{Word: item})
			continue
		}
		tagged = append(tagged, domain.TaggedWord{Word: item[:idx], POS: item[idx+1:]})
	}
	return tagged
}

// AddWord registers a word with the loaded dictionary.
func (j *Jieba) AddWord(word string) {
	j.jb.AddWord(word)
}

// Close frees the underlying C handle. The Jieba must not be used afterwards.
func (j *Jieba) Close() error {
	if j.jb != nil {
		// gojieba registers Free as a finalizer; clear it so GC does not free twice.
		runtime.SetFinalizer(j.jb, nil)
		j.jb.Free()
		j.jb = nil
	}
	return nil
}
