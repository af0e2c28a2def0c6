package token

// Reserved words. The lexer emits them as Identifier; the parser matches
// them by text.
const (
	KwExtern = "extern"
	KwUse    = "use"
	KwLet    = "let"
	KwFunc   = "func"
	KwMut    = "mut"
)

var keywords = map[string]struct{}{
	KwExtern: {},
	KwUse:    {},
	KwLet:    {},
	KwFunc:   {},
	KwMut:    {},
}

// IsKeyword reports whether ident is reserved.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind == Identifier && IsKeyword(t.Text)
}
