package lexer

import (
	"testing"
)

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor("test.vs", "a\nb")

	for i, want := range []rune{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF at %d", i)
		}
		if cursor.Peek() != want {
			t.Errorf("Expected peek %q, got %q", want, cursor.Peek())
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Expected bump %q, got %q", want, got)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected 0 at EOF")
	}
	if cursor.Pos.Line != 1 || cursor.Pos.Column != 1 {
		t.Errorf("end position = %d:%d, want 1:1", cursor.Pos.Line, cursor.Pos.Column)
	}
}

// TestPeek2 проверяет Peek2 на середине и конце текста
func TestPeek2(t *testing.T) {
	cursor := NewCursor("test.vs", "abc")

	r0, r1, ok := cursor.Peek2()
	if !ok || r0 != 'a' || r1 != 'b' {
		t.Errorf("Expected Peek2('a', 'b'), got ('%c', '%c', %v)", r0, r1, ok)
	}

	cursor.Bump()
	cursor.Bump()

	r0, r1, ok = cursor.Peek2()
	if ok || r0 != 0 || r1 != 0 {
		t.Errorf("Expected Peek2 to fail at end, got ('%c', '%c', %v)", r0, r1, ok)
	}
}

// TestSpanFromUnicode: индексы считаются в рунах, а не в байтах
func TestSpanFromUnicode(t *testing.T) {
	cursor := NewCursor("test.vs", "α\nβγ")

	cursor.Bump() // α
	cursor.Bump() // \n
	mark := cursor.Mark()
	cursor.Bump() // β
	cursor.Bump() // γ

	sp := cursor.SpanFrom(mark)
	if sp.Min.Index != 2 || sp.Max.Index != 3 {
		t.Errorf("span indices = %d..%d, want 2..3", sp.Min.Index, sp.Max.Index)
	}
	if sp.Min.Line != 1 || sp.Min.Column != 0 || sp.Max.Column != 1 {
		t.Errorf("span = %v", sp)
	}
	if got := sp.Snippet(); got != "βγ" {
		t.Errorf("Snippet() = %q", got)
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor("test.vs", ":x")
	if cursor.Eat('x') {
		t.Fatal("Eat must not consume a mismatching rune")
	}
	if !cursor.Eat(':') || cursor.Peek() != 'x' {
		t.Fatal("Eat must consume a matching rune")
	}
}
