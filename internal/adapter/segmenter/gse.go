package segmenter

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Gse is a pure-Go segmentation backend. It has no keyword extraction.
type Gse struct {
	seg gse.Segmenter
}

// NewGse loads the embedded Chinese dictionary and, when set, userDict.
// It turns off gse's Latin lowercasing, which is process-wide, so tokens
// keep the case of the input.
func NewGse(userDict string) (*Gse, error) {
	gse.ToLower = false
	g := &Gse{}
	if err := g.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("failed to load gse dictionary: %w", err)
	}
	if userDict != "" {
		if err := g.seg.LoadDict(userDict); err != nil {
			return nil, fmt.Errorf("failed to load gse user dictionary: %w", err)
		}
	}
	return g, nil
}

func (g *Gse) Cut(text string, hmm bool) []string {
	return g.seg.Cut(text, hmm)
}

func (g *Gse) CutAll(text string) []string {
	return g.seg.CutAll(text)
}

func (g *Gse) CutForSearch(text string, hmm bool) []string {
	return g.seg.CutSearch(text, hmm)
}
