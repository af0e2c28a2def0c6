package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedNewlines
)

// File captures metadata and normalized content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Text    string
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Start returns the position of the first character of the file.
func (f *File) Start() Position {
	return NewPosition(f.Path, f.Text)
}
