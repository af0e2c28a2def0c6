package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"vesuvius/internal/diag"
	"vesuvius/internal/token"
)

// Поддержка: 123, 1_000, 1.5, 3. (→ 3.0).
// '_' — визуальный разделитель, вырезается. Вторая точка числу не принадлежит
// и остаётся следующему токену: "1.2.3" → Float(1.2), Period, Integer(3).
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()

	var digits strings.Builder
	dots := 0
scan:
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isDec(ch):
			digits.WriteRune(lx.cursor.Bump())
		case ch == '_':
			lx.cursor.Bump()
		case ch == '.' && dots == 0:
			dots++
			digits.WriteRune(lx.cursor.Bump())
		default:
			break scan
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := digits.String()

	if dots == 0 {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.Token{}, lx.fail(diag.LexInvalidNumber, sp, fmt.Sprintf("Integer literal `%s` does not fit in 64 bits.", text))
		}
		return token.Token{Kind: token.Integer, Span: sp, Int: v}, nil
	}

	// "3." → "3.0"
	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, lx.fail(diag.LexInvalidNumber, sp, fmt.Sprintf("Float literal `%s` is out of range.", text))
	}
	return token.Token{Kind: token.Float, Span: sp, Float: v}, nil
}
