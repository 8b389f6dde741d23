package usecase

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"wordseg/internal/domain"
)

func TestDemo_Output(t *testing.T) {
	tok := &spaceTokenizer{}
	ext := &staticExtractor{keywords: domain.Keywords{
		{Word: "jieba", Weight: 0.61234},
		{Word: "分词", Weight: 0.5},
		{Word: "自然语言", Weight: 0.4},
		{Word: "文本", Weight: 0.3},
		{Word: "模式", Weight: 0.2},
		{Word: "处理", Weight: 0.1},
	}}

	var buf bytes.Buffer
	if err := NewDemoUseCase(tok, ext).Run(&buf, "我 喜欢 Python", strings.Repeat("词 ", 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	bar := strings.Repeat("=", 50)
	for _, want := range []string{
		bar + " 短文本分词 " + bar + "\n",
		"精准模式（去停用词）： ['我', '喜欢', 'Python']\n",
		"全模式（去停用词）： ['我', '喜欢', 'Python', '我', '喜欢', 'Python']\n",
		"搜索引擎模式（去停用词）： ['我', '喜欢', 'Python']\n",
		"\n" + bar + " 长文本分词 " + bar + "\n",
		"长文本分词结果（前20个）： [" + strings.TrimSuffix(strings.Repeat("'词', ", 20), ", ") + "]\n",
		"\n" + bar + " 长文本关键词提取 " + bar + "\n",
		"第1个关键词：jieba（权重：0.6123）\n",
		"第5个关键词：模式（权重：0.2000）\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "第6个关键词") {
		t.Errorf("expected only 5 keywords:\n%s", out)
	}

	wantModes := []domain.Mode{domain.ModePrecise, domain.ModeFull, domain.ModeSearch, domain.ModePrecise}
	if len(tok.modes) != len(wantModes) {
		t.Fatalf("expected %d tokenize calls, got %d", len(wantModes), len(tok.modes))
	}
	for i, m := range wantModes {
		if tok.modes[i] != m {
			t.Errorf("call %d: expected mode %s, got %s", i, m, tok.modes[i])
		}
	}
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("broken pipe")
}

func TestDemo_StopsAtFirstWriteError(t *testing.T) {
	w := &failingWriter{}
	err := NewDemoUseCase(&spaceTokenizer{}, &staticExtractor{}).Run(w, ShortSample, LongSample)
	if err == nil {
		t.Fatal("expected write error")
	}
	if w.writes != 1 {
		t.Errorf("expected writing to stop after the first failure, got %d writes", w.writes)
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{nil, "[]"},
		{[]string{}, "[]"},
		{[]string{"分词"}, "['分词']"},
		{[]string{"自然语言", "处理"}, "['自然语言', '处理']"},
	}

	for _, tt := range tests {
		if got := FormatTokens(tt.tokens); got != tt.want {
			t.Errorf("FormatTokens(%v) = %s, want %s", tt.tokens, got, tt.want)
		}
	}
}

func TestHead(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	if got := Head(tokens, 2); len(got) != 2 {
		t.Errorf("expected 2 tokens, got %v", got)
	}
	if got := Head(tokens, 5); len(got) != 3 {
		t.Errorf("expected 3 tokens, got %v", got)
	}
	if got := Head(tokens, -1); len(got) != 3 {
		t.Errorf("expected all tokens for negative n, got %v", got)
	}
}
