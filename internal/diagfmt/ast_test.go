package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vesuvius/internal/lexer"
	"vesuvius/internal/parser"
)

func mustParse(t *testing.T, src string) parser.Result {
	t.Helper()
	toks, err := lexer.Tokenize("t.vs", src, lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	res, err := parser.Parse(toks, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return res
}

const sample = "use io;\n#[entry]\nfunc add(a: Int, b: Int): Int { a + b; }"

func TestFormatASTPretty(t *testing.T) {
	res := mustParse(t, sample)
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, res.Builder.Nodes, res.Nodes); err != nil {
		t.Fatal(err)
	}
	want := "use io\nfunc add(a: Int, b: Int): Int {(a + b);}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatASTTree(t *testing.T) {
	res := mustParse(t, sample)
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, res.Builder.Nodes, res.Nodes); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Node[0]: LocalImport io (span: 1:1-1:6)",
		"Node[1]: DefineFunction add #[entry] (span: 2:1-3:40)",
		"├─ Params",
		"│  ├─ Param a",
		"│  │  └─ Type Int (span: 3:13-3:15)",
		"│  └─ Param b",
		"│     └─ Type Int (span: 3:21-3:23)",
		"├─ Return",
		"│  └─ Type Int (span: 3:27-3:29)",
		"└─ Body",
		"   └─ Addition (span: 3:33-3:37)",
		"      ├─ Literal a (span: 3:33-3:33)",
		"      └─ Literal b (span: 3:37-3:37)",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatASTJSON(t *testing.T) {
	res := mustParse(t, sample)
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, res.Builder.Nodes, res.Nodes); err != nil {
		t.Fatal(err)
	}
	var out []ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(out))
	}
	fn := out[1]
	if fn.Kind != "DefineFunction" || fn.Fields["name"] != "add" || fn.Fields["return"] != "Int" {
		t.Fatalf("unexpected function %+v", fn)
	}
	if len(fn.Headers) != 1 || fn.Headers[0] != "entry" {
		t.Fatalf("headers = %v", fn.Headers)
	}
	if len(fn.Children) != 1 || fn.Children[0].Kind != "Addition" || len(fn.Children[0].Children) != 2 {
		t.Fatalf("body = %+v", fn.Children)
	}
}
