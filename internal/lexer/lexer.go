package lexer

import (
	"vesuvius/internal/source"
	"vesuvius/internal/token"
)

type Lexer struct {
	cursor Cursor
	opts   Options
	done   bool  // Eof уже выдан
	err    error // первая фатальная ошибка
}

// New creates a lexer over text. Newlines must already be normalized;
// Tokenize does that for callers holding raw text.
func New(filename, text string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(filename, text),
		opts:   opts,
	}
}

// Tokenize normalizes newlines in text and returns its tokens, always
// terminated by Eof. On a fatal lexical error it returns the tokens scanned so
// far together with the diagnostic as error.
func Tokenize(filename, text string, opts Options) ([]token.Token, error) {
	text, _ = source.NormalizeNewlines(text)
	return New(filename, text, opts).All()
}

// TokenizeFile tokenizes a file loaded into a FileSet.
func TokenizeFile(f *source.File, opts Options) ([]token.Token, error) {
	return New(f.Path, f.Text, opts).All()
}

// All drains the lexer.
func (lx *Lexer) All() ([]token.Token, error) {
	tokens := make([]token.Token, 0, len(lx.cursor.src)/3+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens, nil
		}
	}
}

// Next возвращает следующий значимый токен.
// После Eof всегда возвращает Eof; после фатальной ошибки — ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{Kind: token.Eof, Span: source.At(lx.cursor.Pos)}, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdent(), nil
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanChar()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Done reports whether Eof has been produced.
func (lx *Lexer) Done() bool {
	return lx.done
}
