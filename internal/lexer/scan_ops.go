package lexer

import (
	"fmt"

	"vesuvius/internal/diag"
	"vesuvius/internal/token"
)

var singles = map[rune]token.Kind{
	'#': token.Hash,
	'(': token.LParenthesis,
	')': token.RParenthesis,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	'<': token.LCarat,
	'>': token.RCarat,
	'+': token.Plus,
	'-': token.Minus,
	',': token.Comma,
	'!': token.Bang,
	'.': token.Period,
	'=': token.Equals,
	':': token.Colon,
	'*': token.Astrisk,
	'/': token.Slash,
	';': token.Eol,
}

// Жадность: сначала 2-символьные (::, **), затем 1-символьные.
// Одиночный ':' или '*' не трогает следующий символ.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, error) {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}, nil
	}

	switch {
	case lx.try2(':', ':'):
		return emit(token.DoubleColon)
	case lx.try2('*', '*'):
		return emit(token.DoubleAstrisk)
	}

	ch := lx.cursor.Peek()
	if k, ok := singles[ch]; ok {
		lx.cursor.Bump()
		return emit(k)
	}

	// неизвестный символ
	return token.Token{}, lx.fail(diag.LexIllegalCharacter, lx.cursor.Here(), fmt.Sprintf("Illegal character `%c`.", ch))
}
