package token

import (
	"testing"
)

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"extern", "use", "let", "func", "mut"} {
		if !IsKeyword(kw) {
			t.Fatalf("IsKeyword(%q) = false", kw)
		}
	}
	for _, s := range []string{"", "Let", "FUNC", "fn", "muts", "x"} {
		if IsKeyword(s) {
			t.Fatalf("IsKeyword(%q) = true", s)
		}
	}
}

func TestTokenIsKeyword(t *testing.T) {
	if !(Token{Kind: Identifier, Text: "let"}).IsKeyword() {
		t.Fatal("identifier let must be a keyword")
	}
	if (Token{Kind: String, Text: "let"}).IsKeyword() {
		t.Fatal("string literal must never be a keyword")
	}
}
