package token

import (
	"fmt"
	"strconv"
	"strings"

	"vesuvius/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Char  rune
	Int   int64
	Float float64
}

// Equal compares kind and payload, ignoring the span.
// Lookahead in the parser is written in terms of Equal.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Identifier, String:
		return t.Text == o.Text
	case Character:
		return t.Char == o.Char
	case Integer:
		return t.Int == o.Int
	case Float:
		return t.Float == o.Float
	default:
		return true
	}
}

// IsIdent reports whether the token is an identifier, optionally with the given name.
func (t Token) IsIdent(name ...string) bool {
	if t.Kind != Identifier {
		return false
	}
	if len(name) == 0 {
		return true
	}
	return t.Text == name[0]
}

// IsLiteral reports whether the token carries a payload.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// Value renders the payload in source-like form.
func (t Token) Value() string {
	switch t.Kind {
	case Identifier:
		return t.Text
	case Character:
		return Quote(string(t.Char), '\'')
	case String:
		return Quote(t.Text, '"')
	case Integer:
		return strconv.FormatInt(t.Int, 10)
	case Float:
		return FormatFloat(t.Float)
	default:
		return t.Kind.Lexeme()
	}
}

func (t Token) String() string {
	if t.Kind.IsLiteral() {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Value())
	}
	return t.Kind.String()
}

// FormatFloat renders f with a decimal point even when it is integral.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".eNI") {
		return s
	}
	return s + ".0"
}
