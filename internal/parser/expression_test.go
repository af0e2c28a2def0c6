package parser_test

import (
	"testing"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
)

func TestExpressions_Format(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "1 + 2 * 3;", "(1 + (2 * 3))"},
		{"left fold addition", "1 - 2 + 3;", "((1 - 2) + 3)"},
		{"power left fold", "2 ** 3 ** 2;", "((2 ** 3) ** 2)"},
		{"power binds tighter", "a * b ** c;", "(a * (b ** c))"},
		{"division", "a / b * c;", "((a / b) * c)"},
		{"unary", "-a + !b;", "((- a) + (! b))"},
		{"nested unary", "--a;", "(- (- a))"},
		{"module member", "std::io::out;", "std::io::out"},
		{"class member", "a.b.c;", "a.b.c"},
		{"slice", "xs[i + 1];", "xs[(i + 1)]"},
		{"call", "std::io.print(a, 'c', \"s\", 1.5);", `std::io.print(a, 'c', "s", 1.5)`},
		{"empty call", "f();", "f()"},
		{"float", "3.;", "3.0"},
		{"unary on member", "-a.b;", "(- a).b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, id := bodyExpr(t, tt.src)
			if got := nodes.Format(id); got != tt.want {
				t.Fatalf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpressions_PrecedenceShape(t *testing.T) {
	nodes, id := bodyExpr(t, "1 + 2 * 3;")
	add, ok := nodes.Binary(id)
	if !ok || nodes.Get(id).Kind != ast.Addition {
		t.Fatalf("root must be Addition, got %v", nodes.Get(id).Kind)
	}
	if nodes.Get(add.Right).Kind != ast.Multiplication {
		t.Fatalf("right operand must be Multiplication, got %v", nodes.Get(add.Right).Kind)
	}
}

func TestExpressions_PowerLeftFold(t *testing.T) {
	nodes, id := bodyExpr(t, "2 ** 3 ** 2;")
	outer, _ := nodes.Binary(id)
	if nodes.Get(outer.Left).Kind != ast.Power {
		t.Fatal("left operand of the outer Power must be Power(2, 3)")
	}
	lit, ok := nodes.LiteralOf(outer.Right)
	if !ok || lit.Int != 2 {
		t.Fatal("right operand of the outer Power must be 2")
	}
}

func TestExpressions_CallEndsPostfixChain(t *testing.T) {
	for _, src := range []string{"f()();", "f().x;", "f()[0];"} {
		t.Run(src, func(t *testing.T) {
			d := expectParseError(t, "func g(): Int { "+src+" }", diag.SynMissingToken)
			if d.Severity != diag.SevError {
				t.Fatalf("severity = %s", d.Severity)
			}
		})
	}
}

func TestExpressions_Spans(t *testing.T) {
	nodes, id := bodyExpr(t, "a + foo(b);")
	if got := nodes.Get(id).Span.Snippet(); got != "a + foo(b)" {
		t.Fatalf("span = %q", got)
	}
	bin, _ := nodes.Binary(id)
	if got := nodes.Get(bin.Right).Span.Snippet(); got != "foo(b)" {
		t.Fatalf("call span = %q", got)
	}
}

func TestExpressions_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"missing operand", "func f(): Int { 1 + ; }", "Expected an expression, found `;`."},
		{"unclosed slice", "func f(): Int { a[1; }", "Expected `]` to close the slice, found `;`."},
		{"unclosed call", "func f(): Int { f(1 2); }", "Expected `,` or `)` in the call arguments, found `2`."},
		{"member needs name", "func f(): Int { a.1; }", "Expected member name, found `1`."},
		{"missing semicolon", "func f(): Int { a }", "Expected `;` after the expression, found `}`."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := expectParseError(t, tt.src, diag.SynMissingToken)
			if d.Message != tt.msg {
				t.Fatalf("message = %q, want %q", d.Message, tt.msg)
			}
		})
	}
}

func TestExpressions_Assignment(t *testing.T) {
	nodes, id := bodyExpr(t, "x.y = 1 + 2;")
	if nodes.Get(id).Kind != ast.AssignVariable {
		t.Fatalf("kind = %v", nodes.Get(id).Kind)
	}
	if got := nodes.Format(id); got != "x.y = (1 + 2)" {
		t.Fatalf("Format() = %q", got)
	}

	d := expectParseError(t, "func f(): Int { a = b = c; }", diag.SynMissingToken)
	if d.Span.Snippet() != "=" || d.Span.Min.Column != 22 {
		t.Fatalf("error must point at the second `=`, got %v", d.Span)
	}
}
