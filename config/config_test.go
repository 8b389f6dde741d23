package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Segmenter.Backend != "jieba" {
		t.Errorf("expected Backend=jieba, got %s", cfg.Segmenter.Backend)
	}
	if !cfg.Segmenter.HMM {
		t.Error("expected HMM enabled by default")
	}
	if cfg.Tokenize.Mode != "precise" {
		t.Errorf("expected Mode=precise, got %s", cfg.Tokenize.Mode)
	}
	if !cfg.Tokenize.RemoveStopwords {
		t.Error("expected RemoveStopwords=true")
	}
	if cfg.Keywords.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Keywords.TopK)
	}
	if cfg.Keywords.WithWeight {
		t.Error("expected WithWeight=false")
	}
	if len(cfg.Keywords.AllowPOS) != 0 {
		t.Errorf("expected no POS restriction, got %v", cfg.Keywords.AllowPOS)
	}
	if cfg.Batch.Preview != 20 {
		t.Errorf("expected Preview=20, got %d", cfg.Batch.Preview)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wordseg.yaml")

	content := `
segmenter:
  backend: gse
tokenize:
  mode: search
  remove_stopwords: false
  extra_stopwords: ["进行"]
keywords:
  top_k: 10
  allow_pos: ["n", "vn"]
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Segmenter.Backend != "gse" {
		t.Errorf("expected Backend=gse, got %s", cfg.Segmenter.Backend)
	}
	if !cfg.Segmenter.HMM {
		t.Error("expected HMM default to survive partial config")
	}
	if cfg.Tokenize.Mode != "search" {
		t.Errorf("expected Mode=search, got %s", cfg.Tokenize.Mode)
	}
	if cfg.Tokenize.RemoveStopwords {
		t.Error("expected RemoveStopwords=false")
	}
	if len(cfg.Tokenize.ExtraStopwords) != 1 || cfg.Tokenize.ExtraStopwords[0] != "进行" {
		t.Errorf("unexpected ExtraStopwords: %v", cfg.Tokenize.ExtraStopwords)
	}
	if cfg.Keywords.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Keywords.TopK)
	}
	if len(cfg.Keywords.AllowPOS) != 2 {
		t.Errorf("expected 2 allowed POS tags, got %v", cfg.Keywords.AllowPOS)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wordseg.yaml")
	if err := os.WriteFile(configPath, []byte("keywords: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".wordseg"), 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".wordseg", "config.yaml")

	content := `
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordseg.yaml")

	cfg := DefaultConfig()
	cfg.Keywords.TopK = 8
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Keywords.TopK != 8 {
		t.Errorf("expected TopK=8, got %d", loaded.Keywords.TopK)
	}
}
