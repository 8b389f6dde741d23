package usecase

import (
	"fmt"

	"go.uber.org/zap"
	"wordseg/internal/domain"
	"wordseg/internal/logger"
	"wordseg/internal/port"
)

// BatchOptions controls how each file is segmented.
type BatchOptions struct {
	Mode            domain.Mode
	RemoveStopwords bool
	TopK            int
}

// ProgressFunc is called after each file.
type ProgressFunc func(processed, total int, path string)

// BatchUseCase segments every file a walker selects.
type BatchUseCase struct {
	walker    port.FileWalker
	reader    port.FileReader
	tokenizer port.Tokenizer
	extractor port.KeywordExtractor
	log       *zap.SugaredLogger
}

// NewBatchUseCase creates a new batch use case.
func NewBatchUseCase(
	walker port.FileWalker,
	reader port.FileReader,
	tokenizer port.Tokenizer,
	extractor port.KeywordExtractor,
) *BatchUseCase {
	return &BatchUseCase{
		walker:    walker,
		reader:    reader,
		tokenizer: tokenizer,
		extractor: extractor,
		log:       logger.NewLogger("batch"),
	}
}

// Run processes files under root in path order. Unreadable files are
// recorded in the result and skipped; a failed walk aborts the run.
func (u *BatchUseCase) Run(root string, opts BatchOptions, progress ProgressFunc) (*domain.BatchResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result := &domain.BatchResult{Files: make([]domain.FileResult, 0, len(files))}
	for i, file := range files {
		content, err := u.reader.ReadFile(file.Path)
		if err != nil {
			u.log.Warnw("skipping unreadable file", "path", file.Path, "error", err)
			result.FilesFailed++
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
		} else {
			tokens := u.tokenizer.Tokenize(content, opts.Mode, opts.RemoveStopwords)
			result.Files = append(result.Files, domain.FileResult{
				Path:     file.Path,
				Tokens:   tokens,
				Keywords: u.extractor.Extract(content, opts.TopK),
			})
			result.FilesProcessed++
			result.TokensTotal += len(tokens)
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	u.log.Debugw("batch finished", "root", root, "processed", result.FilesProcessed, "failed", result.FilesFailed)
	return result, nil
}
