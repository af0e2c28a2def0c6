package lexer

import (
	"fmt"
	"strings"

	"vesuvius/internal/diag"
	"vesuvius/internal/token"
)

// scanChar: ', одна руна или escape, обязательная закрывающая '.
// Любая ошибка здесь фатальна.
func (lx *Lexer) scanChar() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '

	if lx.cursor.EOF() {
		return token.Token{}, lx.fail(diag.LexMissingCharacter, lx.cursor.SpanFrom(start), "Expected a character after `'`.")
	}
	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		return token.Token{}, lx.fail(diag.LexMissingCharacter, lx.cursor.SpanFrom(start), "Expected a character between quotes.")
	}

	var value rune
	if lx.cursor.Peek() == '\\' {
		esc := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			return token.Token{}, lx.fail(diag.LexMissingCharacter, lx.cursor.SpanFrom(start), "Expected an escaped character after `\\`.")
		}
		raw := lx.cursor.Bump()
		r, ok := token.Unescape(raw)
		if !ok {
			return token.Token{}, lx.fail(diag.LexInvalidEscape, lx.cursor.SpanFrom(esc), fmt.Sprintf("Invalid escape sequence `\\%c`.", raw))
		}
		value = r
	} else {
		value = lx.cursor.Bump()
	}

	if lx.cursor.EOF() || lx.cursor.Peek() != '\'' {
		sp := lx.cursor.Here()
		if lx.cursor.EOF() {
			sp = lx.cursor.SpanFrom(start)
		}
		return token.Token{}, lx.fail(diag.LexMissingCharacter, sp, "Expected `'` to close the character literal.")
	}
	lx.cursor.Bump()

	return token.Token{Kind: token.Character, Span: lx.cursor.SpanFrom(start), Char: value}, nil
}

// scanString: "...", тот же набор escape. Неизвестный escape — предупреждение,
// обратный слэш и символ после него остаются в значении как есть.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening "

	var b strings.Builder
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '"' {
			lx.cursor.Bump()
			return token.Token{Kind: token.String, Span: lx.cursor.SpanFrom(start), Text: b.String()}, nil
		}
		if ch != '\\' {
			b.WriteRune(lx.cursor.Bump())
			continue
		}

		esc := lx.cursor.Mark()
		lx.cursor.Bump() // '\'
		if lx.cursor.EOF() {
			break
		}
		raw := lx.cursor.Bump()
		if r, ok := token.Unescape(raw); ok {
			b.WriteRune(r)
			continue
		}
		lx.warn(diag.LexInvalidEscape, lx.cursor.SpanFrom(esc), fmt.Sprintf("Invalid escape sequence `\\%c`, kept as written.", raw))
		b.WriteRune('\\')
		b.WriteRune(raw)
	}

	// незакрытая строка
	return token.Token{}, lx.fail(diag.LexMissingCharacter, lx.cursor.SpanFrom(start), "Expected `\"` to close the string literal.")
}
