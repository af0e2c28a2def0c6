package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeDriver, false},
		{LevelError, KindSpanBegin, ScopeDriver, false},
		{LevelError, KindError, ScopeFile, true},
		{LevelPhase, KindSpanBegin, ScopePass, true},
		{LevelPhase, KindSpanBegin, ScopeFile, false},
		{LevelDetail, KindSpanEnd, ScopeFile, true},
		{LevelDetail, KindPoint, ScopeNode, false},
		{LevelDebug, KindPoint, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.kind, tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s, %s) = %v, want %v", tt.level, tt.kind, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if l, err := ParseLevel("DETAIL"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel(DETAIL) = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON, "sess-1")

	root := Begin(tr, ScopeDriver, "parse", 0)
	pass := Begin(tr, ScopePass, "lex", root.ID())
	pass.WithExtra("tokens", "12").End("")
	Begin(tr, ScopeFile, "file:a.vs", pass.ID()).End("") // отфильтровано уровнем
	root.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Name != "lex" || ev.Session != "sess-1" || ev.Extra["tokens"] != "12" || ev.ParentID != root.ID() {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText, "s")
	sp := Begin(tr, ScopePass, "parse", 7)
	sp.WithExtra("b", "2").WithExtra("a", "1").End("done")
	Error(tr, ScopeFile, "read", "no such file", 0)

	out := buf.String()
	if !strings.Contains(out, "  → parse\n") {
		t.Errorf("missing begin line:\n%s", out)
	}
	if !strings.Contains(out, "  ← parse (done) {a=1, b=2} ") {
		t.Errorf("missing end line with sorted extras:\n%s", out)
	}
	if !strings.Contains(out, "! read (no such file)\n") {
		t.Errorf("missing error line:\n%s", out)
	}
}

func TestSlogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := NewSlogTracer(logger, LevelPhase, "sess-2")
	Begin(tr, ScopePass, "validate", 0).WithExtra("nodes", "3").End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got:\n%s", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "validate" || rec["session"] != "sess-2" || rec["nodes"] != "3" || rec["kind"] != "end" {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNewGeneratesSessionAndFansOut(t *testing.T) {
	var stream, logs bytes.Buffer
	tr, err := New(Config{
		Level:  LevelPhase,
		Format: FormatNDJSON,
		Output: &stream,
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.(*MultiTracer); !ok {
		t.Fatalf("expected MultiTracer, got %T", tr)
	}
	Point(tr, ScopeDriver, "start", "", 0)

	var ev jsonEvent
	if err := json.Unmarshal(stream.Bytes(), &ev); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(ev.Session); err != nil {
		t.Fatalf("session %q is not a uuid: %v", ev.Session, err)
	}
	if !strings.Contains(logs.String(), "session="+ev.Session) {
		t.Fatalf("log records must carry the same session:\n%s", logs.String())
	}

	off, err := New(Config{Level: LevelOff, Output: &stream})
	if err != nil || off != Nop {
		t.Fatalf("LevelOff must yield Nop, got %T %v", off, err)
	}
}

func TestContextPropagation(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != Nop || ParentSpan(ctx) != 0 {
		t.Fatal("empty context must yield Nop and no parent")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelDebug, FormatText, "")
	ctx = WithParentSpan(WithTracer(ctx, tr), 42)
	if FromContext(ctx) != Tracer(tr) || ParentSpan(ctx) != 42 {
		t.Fatal("context values lost")
	}
}
