package lexer_test

import (
	"testing"

	"vesuvius/internal/lexer"
	"vesuvius/internal/token"
)

func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{
		"func add(a: Int, b: Int): Int { a + b; }",
		"let mut x = 1_000.5;",
		`'\n' "\q" // c`,
		"1.2.3 :: ** $",
		"\r\n\r",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		toks, err := lexer.Tokenize("fuzz.vs", input, lexer.Options{})
		if err != nil {
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.Eof {
			t.Fatalf("token stream must end with Eof")
		}
		prev := -1
		for _, tok := range toks {
			if tok.Span.Min.Index > tok.Span.Max.Index {
				t.Fatalf("inverted span %v", tok.Span)
			}
			if tok.Span.Min.Index < prev {
				t.Fatalf("tokens out of order at %v", tok.Span)
			}
			prev = tok.Span.Max.Index
		}
	})
}
