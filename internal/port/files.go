package port

// FileWalker lists the batch input files below a root directory.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path string
	Size int64
}

type FileReader interface {
	ReadFile(path string) (string, error)
}
