package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
)

// NormalizeNewlines заменяет \r\n и одиночные \r на \n.
// Возвращает новый текст и флаг: были ли замены.
func NormalizeNewlines(text string) (string, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if strings.IndexByte(text, '\r') < 0 {
		return text, false
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '\r' {
			b.WriteByte(text[i])
			continue
		}
		// \r\n — съедаем \n вместе с \r
		if i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		b.WriteByte('\n')
	}
	return b.String(), true
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex returns the rune offsets of every '\n' in text.
func buildLineIndex(text string) []uint32 {
	out := make([]uint32, 0, strings.Count(text, "\n"))
	idx := 0
	for _, r := range text {
		if r == '\n' {
			off, err := safecast.Conv[uint32](idx)
			if err != nil {
				panic(fmt.Errorf("line index overflow: %w", err))
			}
			out = append(out, off)
		}
		idx++
	}
	return out
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns an absolute, slash-separated form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// RelativePath returns path relative to baseDir.
func RelativePath(path, baseDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return "", err
	}
	// вне базовой директории — абсолютный путь читается лучше, чем ../../..
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(absPath), nil
	}
	return filepath.ToSlash(rel), nil
}

// BaseName returns the last element of path.
func BaseName(path string) string {
	return filepath.Base(path)
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func FormatPath(path, mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(path); err == nil {
			return abs
		}
		return path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(path, baseDir); err == nil {
			return rel
		}
		return path

	case "basename":
		return BaseName(path)

	case "auto":
		// Auto: если путь короткий или относительный - как есть, иначе basename
		if len(path) < 40 || !filepath.IsAbs(path) {
			return path
		}
		return BaseName(path)

	default:
		return path
	}
}
