package lexer

import (
	"vesuvius/internal/token"
)

// scanIdent сканирует [A-Za-z][A-Za-z0-9_]*.
// Зарезервированные слова остаются Identifier — их различает парсер.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	buf := []rune{lx.cursor.Bump()}
	for isIdentContinue(lx.cursor.Peek()) {
		buf = append(buf, lx.cursor.Bump())
	}
	return token.Token{Kind: token.Identifier, Span: lx.cursor.SpanFrom(start), Text: string(buf)}
}
