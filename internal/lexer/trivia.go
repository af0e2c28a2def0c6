package lexer

// skipTrivia пропускает пробельные символы и комментарии // ... до \n.
// Сам \n не значим: конец инструкции задаёт ';'.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()

		if isSpace(ch) {
			lx.cursor.Bump()
			continue
		}

		if ch == '/' {
			if _, next, ok := lx.cursor.Peek2(); ok && next == '/' {
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				continue
			}
		}

		// нет больше trivia
		return
	}
}
