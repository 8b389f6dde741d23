package domain

import "strings"

// Mode selects the segmentation strategy.
type Mode int

const (
	ModePrecise Mode = iota // ModePrecise returns the single best segmentation.
	ModeFull                // ModeFull returns every dictionary word found, overlaps included.
	ModeSearch              // ModeSearch is precise mode with long words split again for recall.
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSearch:
		return "search"
	default:
		return "precise"
	}
}

// LookupMode resolves a mode name. The second result is false when the name
// is not recognised, in which case ModePrecise is returned.
func LookupMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "precise", "default":
		return ModePrecise, true
	case "full":
		return ModeFull, true
	case "search":
		return ModeSearch, true
	default:
		return ModePrecise, false
	}
}

// ParseMode is LookupMode without the recognition flag.
func ParseMode(name string) Mode {
	m, _ := LookupMode(name)
	return m
}

type Keyword struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// Keywords is ordered by weight, highest first.
type Keywords []Keyword

// Words drops the weights, keeping order.
func (ks Keywords) Words() []string {
	words := make([]string, len(ks))
	for i, k := range ks {
		words[i] = k.Word
	}
	return words
}

type TaggedWord struct {
	Word string
	POS  string
}

type FileResult struct {
	Path     string   `json:"path"`
	Tokens   []string `json:"tokens"`
	Keywords Keywords `json:"keywords"`
}

type BatchResult struct {
	Files          []FileResult
	FilesProcessed int
	FilesFailed    int
	TokensTotal    int
	Errors         []string
}
