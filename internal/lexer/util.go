package lexer

import "unicode"

// ===== Классификаторы =====

// Идентификаторы начинаются только с ASCII-буквы.
func isIdentStart(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDec(r) || r == '_'
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2 съедает две руны, если совпадают; иначе не трогает курсор.
func (lx *Lexer) try2(a, b rune) bool {
	r0, r1, ok := lx.cursor.Peek2()
	if !ok || r0 != a || r1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
