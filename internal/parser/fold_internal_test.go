package parser

import (
	"errors"
	"testing"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/token"
)

func TestFoldRejectsForeignOperator(t *testing.T) {
	p := Parser{arenas: ast.NewBuilder(ast.Hints{})}
	_, err := p.fold(token.Comma, ast.NoNodeID, ast.NoNodeID)
	var d diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("expected diagnostic, got %v", err)
	}
	if d.Severity != diag.SevCritical || d.Code != diag.InternalInvariant {
		t.Fatalf("expected critical internal diagnostic, got %s %s", d.Severity, d.Code.ID())
	}
}

func TestPeekPastEndIsEof(t *testing.T) {
	p := Parser{arenas: ast.NewBuilder(ast.Hints{})}
	if !p.at(token.Eof) {
		t.Fatal("empty stream must look like Eof")
	}
	if tok := p.advance(); tok.Kind != token.Eof || p.pos != 0 {
		t.Fatal("advance must not move past Eof")
	}
	res, err := Parse(nil, Options{})
	if err != nil || len(res.Nodes) != 0 {
		t.Fatalf("Parse(nil) = %v, %v", res.Nodes, err)
	}
}

func TestQuoteList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{";"}, "`;`"},
		{[]string{"=", ";"}, "`=` or `;`"},
		{[]string{":", "=", ";"}, "`:`, `=` or `;`"},
	}
	for _, tt := range tests {
		if got := quoteList(tt.in); got != tt.want {
			t.Errorf("quoteList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
