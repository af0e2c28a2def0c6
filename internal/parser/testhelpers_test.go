package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/lexer"
	"vesuvius/internal/parser"
)

// parseSource токенизирует и разбирает исходник, собирая предупреждения в Bag.
func parseSource(t *testing.T, src string) (parser.Result, *diag.Bag, error) {
	t.Helper()
	bag := diag.NewBag(32)
	opts := diag.BagReporter{Bag: bag}
	toks, err := lexer.Tokenize("test.vs", src, lexer.Options{Reporter: opts})
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	res, err := parser.Parse(toks, parser.Options{Reporter: opts})
	return res, bag, err
}

// mustParse требует успешного разбора без диагностик.
func mustParse(t *testing.T, src string) parser.Result {
	t.Helper()
	res, bag, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	if bag.Len() != 0 {
		t.Fatalf("Parse(%q): unexpected diagnostics: %s", src, diagnosticsSummary(bag))
	}
	return res
}

// expectParseError требует фатальной диагностики с кодом code.
func expectParseError(t *testing.T, src string, code diag.Code) diag.Diagnostic {
	t.Helper()
	res, _, err := parseSource(t, src)
	var d diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("Parse(%q): expected diagnostic error, got %v", src, err)
	}
	if d.Code != code {
		t.Fatalf("Parse(%q): expected %s, got %s (%s)", src, code.ID(), d.Code.ID(), d.Message)
	}
	if res.Nodes != nil {
		t.Fatalf("Parse(%q): no nodes may be returned after an error", src)
	}
	return d
}

// formatted рендерит все верхнеуровневые узлы.
func formatted(res parser.Result) string {
	return res.Builder.Nodes.FormatAll(res.Nodes)
}

// single возвращает единственный верхнеуровневый узел.
func single(t *testing.T, res parser.Result) (*ast.Nodes, ast.NodeID) {
	t.Helper()
	if len(res.Nodes) != 1 {
		t.Fatalf("expected 1 top-level node, got %d:\n%s", len(res.Nodes), formatted(res))
	}
	return res.Builder.Nodes, res.Nodes[0]
}

// bodyExpr разбирает `func f(): Int { <stmt> }` и возвращает первую инструкцию тела.
func bodyExpr(t *testing.T, stmt string) (*ast.Nodes, ast.NodeID) {
	t.Helper()
	res := mustParse(t, "func f(): Int { "+stmt+" }")
	nodes, id := single(t, res)
	fn, ok := nodes.Function(id)
	if !ok || len(fn.Body) == 0 {
		t.Fatalf("expected a function with a body, got %s", formatted(res))
	}
	return nodes, fn.Body[0]
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
