package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"vesuvius/internal/project"
	"vesuvius/internal/source"
	"vesuvius/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит токены файлов на диске, ключ — хеш имени и содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is a token with its span flattened to coordinates.
// Positions are rebuilt against the file text on load.
type CachedToken struct {
	Kind  uint8
	Text  string
	Char  rune
	Int   int64
	Float float64

	MinIndex, MinLine, MinColumn int
	MaxIndex, MaxLine, MaxColumn int
}

// TokenPayload is one cached token stream.
type TokenPayload struct {
	Schema uint16
	Path   string
	Tokens []CachedToken
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// tokenKey — схема, путь и текст; смена любого из них инвалидирует запись.
func tokenKey(file *source.File) project.Digest {
	return project.HashStrings(strconv.Itoa(int(diskCacheSchemaVersion)), file.Path, file.Text)
}

func (c *DiskCache) pathFor(key project.Digest) string {
	// Для удобства читаемости/очистки — подкаталог "tokens".
	return filepath.Join(c.dir, "tokens", key.String()+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		// после успешного Rename временного файла уже нет
		_ = os.Remove(tmp)
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload from the disk cache.
// A payload with a different schema is reported as a miss.
func (c *DiskCache) Get(key project.Digest, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// loadTokens returns the cached stream for file, rebuilt against its text.
func (c *DiskCache) loadTokens(file *source.File) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	var payload TokenPayload
	ok, err := c.Get(tokenKey(file), &payload)
	if err != nil || !ok || payload.Path != file.Path {
		return nil, false
	}
	return tokensFromPayload(file, &payload), true
}

// storeTokens caches tokens. A failed write only costs a future cache miss,
// so callers log the error and go on.
func (c *DiskCache) storeTokens(file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	return c.Put(tokenKey(file), tokensToPayload(file, tokens))
}

func tokensToPayload(file *source.File, tokens []token.Token) *TokenPayload {
	payload := &TokenPayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Tokens: make([]CachedToken, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:      uint8(tok.Kind),
			Text:      tok.Text,
			Char:      tok.Char,
			Int:       tok.Int,
			Float:     tok.Float,
			MinIndex:  tok.Span.Min.Index,
			MinLine:   tok.Span.Min.Line,
			MinColumn: tok.Span.Min.Column,
			MaxIndex:  tok.Span.Max.Index,
			MaxLine:   tok.Span.Max.Line,
			MaxColumn: tok.Span.Max.Column,
		}
	}
	return payload
}

func tokensFromPayload(file *source.File, payload *TokenPayload) []token.Token {
	tokens := make([]token.Token, len(payload.Tokens))
	pos := func(index, line, column int) source.Position {
		return source.Position{Index: index, Line: line, Column: column, Filename: file.Path, Text: file.Text}
	}
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind:  token.Kind(ct.Kind),
			Text:  ct.Text,
			Char:  ct.Char,
			Int:   ct.Int,
			Float: ct.Float,
			Span: source.NewSpan(
				pos(ct.MinIndex, ct.MinLine, ct.MinColumn),
				pos(ct.MaxIndex, ct.MaxLine, ct.MaxColumn),
			),
		}
	}
	return tokens
}
