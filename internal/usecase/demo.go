package usecase

import (
	"fmt"
	"io"
	"strings"

	"wordseg/internal/domain"
	"wordseg/internal/port"
)

const (
	ShortSample = "我喜欢用Python进行自然语言处理"
	LongSample  = `
    自然语言处理（NLP）是人工智能领域的一个重要分支，它致力于使计算机能够理解、解释和生成人类语言。
    jieba是Python中最常用的中文分词库，支持精准模式、全模式和搜索引擎模式，广泛应用于文本分析、关键词提取等场景。
    无论是短文本（如一句话）还是长文本（如一篇文章），jieba都能高效完成分词任务。
    `
)

const (
	demoPreview  = 20
	demoTopK     = 5
	bannerRepeat = 50
)

// DemoUseCase prints sample segmentation and keyword output.
type DemoUseCase struct {
	tokenizer port.Tokenizer
	extractor port.KeywordExtractor
}

// NewDemoUseCase creates a new demo use case.
func NewDemoUseCase(tokenizer port.Tokenizer, extractor port.KeywordExtractor) *DemoUseCase {
	return &DemoUseCase{
		tokenizer: tokenizer,
		extractor: extractor,
	}
}

// Run writes the demo report for the two samples to w.
func (u *DemoUseCase) Run(w io.Writer, short, long string) error {
	p := &printer{w: w}

	p.banner("短文本分词")
	p.line("精准模式（去停用词）：", FormatTokens(u.tokenizer.Tokenize(short, domain.ModePrecise, true)))
	p.line("全模式（去停用词）：", FormatTokens(u.tokenizer.Tokenize(short, domain.ModeFull, true)))
	p.line("搜索引擎模式（去停用词）：", FormatTokens(u.tokenizer.Tokenize(short, domain.ModeSearch, true)))

	p.blank()
	p.banner("长文本分词")
	p.line(fmt.Sprintf("长文本分词结果（前%d个）：", demoPreview), FormatTokens(Head(u.tokenizer.Tokenize(long, domain.ModePrecise, true), demoPreview)))

	p.blank()
	p.banner("长文本关键词提取")
	for idx, k := range u.extractor.Extract(long, demoTopK) {
		p.printf("第%d个关键词：%s（权重：%.4f）\n", idx+1, k.Word, k.Weight)
	}

	return p.err
}

// printer keeps the first write error and skips writes after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) banner(title string) {
	bar := strings.Repeat("=", bannerRepeat)
	p.printf("%s %s %s\n", bar, title, bar)
}

func (p *printer) line(label, value string) {
	p.printf("%s %s\n", label, value)
}

func (p *printer) blank() {
	p.printf("\n")
}

// FormatTokens renders tokens as a bracketed, quoted list.
func FormatTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = "'" + t + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Head returns at most the first n tokens.
func Head(tokens []string, n int) []string {
	if n >= 0 && len(tokens) > n {
		return tokens[:n]
	}
	return tokens
}
