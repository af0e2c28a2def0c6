package driver

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"vesuvius/internal/diag"
	"vesuvius/internal/observ"
	"vesuvius/internal/source"
	"vesuvius/internal/trace"
)

const addSource = "func add(a: Int, b: Int): Int { a + b; }\nlet answer = 42;\n"

func writeSource(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) OnEvent(evt Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, evt)
}

func (l *eventLog) stages(file string, status Status) []Stage {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Stage
	for _, e := range l.events {
		if e.File == file && e.Status == status {
			out = append(out, e.Stage)
		}
	}
	return out
}

func TestParseSourceValidates(t *testing.T) {
	res, err := ParseSource(context.Background(), source.NewFileSet(), "add.vs", addSource, Options{Validate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Nodes) != 2 || res.Builder == nil {
		t.Fatalf("expected 2 globals, got %d", len(res.Nodes))
	}
	// func: 3 типа, тело, a, b; let: выведенный тип и литерал
	if res.NodeCount != 10 {
		t.Fatalf("NodeCount = %d, want 10", res.NodeCount)
	}
	if res.Global == nil {
		t.Fatal("validation result missing")
	}
	if _, ok := res.Global.Lookup("add"); !ok {
		t.Fatalf("add not defined; names = %v", res.Global.Names())
	}
	if res.Failed() || res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestParseSourceWithoutValidation(t *testing.T) {
	res, err := ParseSource(context.Background(), source.NewFileSet(), "dup.vs", "let x = 1; let x = 2;", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Global != nil || len(res.Nodes) != 2 {
		t.Fatalf("validation must not run; nodes = %d", len(res.Nodes))
	}
}

func TestParseSourceFatal(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"lexer", "let x = $;", diag.LexIllegalCharacter},
		{"parser", "let x = ;", diag.SynMissingToken},
		{"validator", "let x = 1; let x = 2;", diag.SemaName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseSource(context.Background(), source.NewFileSet(), "bad.vs", tt.src, Options{Validate: true})
			d, ok := AsDiagnostic(err)
			if !ok {
				t.Fatalf("expected diagnostic error, got %v", err)
			}
			if d.Code != tt.code {
				t.Fatalf("code = %s, want %s", d.Code.ID(), tt.code.ID())
			}
			if !res.Failed() {
				t.Fatal("bag must hold the fatal diagnostic")
			}
			if res.Global != nil {
				t.Fatal("no validation result expected")
			}
		})
	}
}

func TestWarningsReachReporterAndBag(t *testing.T) {
	extra := diag.NewBag(0)
	res, err := ParseSource(context.Background(), source.NewFileSet(), "w.vs", "#[bogus] func f(): Int {1;}", Options{
		Reporter: diag.BagReporter{Bag: extra},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bag.Len() != 1 || extra.Len() != 1 {
		t.Fatalf("bag = %d, reporter = %d; want 1 and 1", res.Bag.Len(), extra.Len())
	}
	if res.Failed() {
		t.Fatal("warnings must not fail the file")
	}
	want := "warning SYN2002 w.vs:1:3 Invalid header `bogus`."
	if got := diag.FormatShortDiagnostics(res.Bag.Items(), false); got != want {
		t.Fatalf("bag = %q, want %q", got, want)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(context.Background(), source.NewFileSet(), filepath.Join(t.TempDir(), "nope.vs"), Options{})
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T %v", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadError must unwrap to ErrNotExist")
	}
}

func TestTokenCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "add.vs", addSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := Options{Cache: cache}

	first, err := TokenizeFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil || first.Cached {
		t.Fatalf("first run: cached=%v err=%v", first != nil && first.Cached, err)
	}
	second, err := TokenizeFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil || !second.Cached {
		t.Fatalf("second run should hit the cache: err=%v", err)
	}
	if !reflect.DeepEqual(first.Tokens, second.Tokens) {
		t.Fatalf("cached tokens differ:\n%v\n%v", first.Tokens, second.Tokens)
	}

	// Другой текст — другой ключ.
	writeSource(t, dir, "add.vs", addSource+"let more = 1;\n")
	third, err := TokenizeFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil || third.Cached {
		t.Fatalf("changed file must miss the cache: err=%v", err)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	fourth, err := TokenizeFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil || fourth.Cached {
		t.Fatalf("dropped cache must miss: err=%v", err)
	}
}

func TestTokenCacheSkipsFilesWithWarnings(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "warn.vs", `let s = "\q";`)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	for run := range 2 {
		res, err := TokenizeFile(context.Background(), source.NewFileSet(), path, Options{Cache: cache})
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if res.Cached {
			t.Fatalf("run %d: file with warnings must not be cached", run)
		}
		if res.Bag.Len() != 1 {
			t.Fatalf("run %d: warning must be reported every time", run)
		}
	}
}

func TestTokenCacheWriteFailureIsLogged(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "add.vs", addSource)
	cacheDir := filepath.Join(dir, "cache")
	cache, err := OpenDiskCacheAt(cacheDir)
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	// файл на месте каталога tokens ломает запись
	writeSource(t, cacheDir, "tokens", "")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := TokenizeFile(context.Background(), source.NewFileSet(), path, Options{Cache: cache, Logger: logger})
	if err != nil {
		t.Fatalf("a failed cache write must not fail tokenizing: %v", err)
	}
	if res.Cached || len(res.Tokens) == 0 {
		t.Fatalf("unexpected result: cached=%v tokens=%d", res.Cached, len(res.Tokens))
	}
	out := logs.String()
	if !strings.Contains(out, "token cache write failed") || !strings.Contains(out, "add.vs") {
		t.Fatalf("write failure not logged:\n%s", out)
	}
}

func TestParseFilesKeepsOrderAndIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "a.vs", addSource)
	bad := writeSource(t, dir, "b.vs", "let x = ;")
	missing := filepath.Join(dir, "c.vs")
	other := writeSource(t, dir, "d.vs", "use util;")

	log := &eventLog{}
	timer := observ.NewTimer()
	paths := []string{good, bad, missing, other}
	_, results, err := ParseFiles(context.Background(), paths, Options{Jobs: 2, Validate: true, Progress: log, Timer: timer})
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Fatalf("result %d is %s, want %s", i, r.Path, paths[i])
		}
	}
	if results[0].Err != nil || results[3].Err != nil {
		t.Fatalf("good files failed: %v / %v", results[0].Err, results[3].Err)
	}
	if _, ok := AsDiagnostic(results[1].Err); !ok {
		t.Fatalf("b.vs: expected diagnostic, got %v", results[1].Err)
	}
	var lerr *LoadError
	if !errors.As(results[2].Err, &lerr) || results[2].Result != nil {
		t.Fatalf("c.vs: expected load error, got %v", results[2].Err)
	}
	all := CollectDiagnostics(results)
	if all.Len() != 1 || !all.HasErrors() || all.Items()[0].Code != diag.SynMissingToken {
		t.Fatalf("collected = %s", diag.FormatShortDiagnostics(all.Items(), false))
	}

	want := []Stage{StageRead, StageLex, StageParse, StageValidate}
	if got := log.stages(good, StatusDone); !reflect.DeepEqual(got, want) {
		t.Fatalf("done stages for a.vs = %v, want %v", got, want)
	}
	if got := log.stages(bad, StatusError); !reflect.DeepEqual(got, []Stage{StageParse}) {
		t.Fatalf("error stages for b.vs = %v", got)
	}
	if got := log.stages(missing, StatusError); !reflect.DeepEqual(got, []Stage{StageRead}) {
		t.Fatalf("error stages for c.vs = %v", got)
	}

	names := map[string]bool{}
	for _, p := range timer.Report().Phases {
		names[p.Name] = true
	}
	for _, s := range want {
		if !names[string(s)] {
			t.Fatalf("timer misses stage %s", s)
		}
	}
}

func TestParseFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.vs", addSource)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ParseFiles(ctx, []string{path}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseFilesTraces(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.vs", addSource)
	var events []trace.Event
	var mu sync.Mutex
	tracer := recorder{level: trace.LevelDebug, emit: func(ev *trace.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, *ev)
	}}
	ctx := trace.WithTracer(context.Background(), tracer)
	if _, _, err := ParseFiles(ctx, []string{path}, Options{}); err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	seen := map[string]bool{}
	for _, ev := range events {
		if ev.Kind == trace.KindSpanEnd {
			seen[ev.Name] = true
		}
	}
	for _, name := range []string{"parse-files", path, "lex", "parse"} {
		if !seen[name] {
			t.Fatalf("missing span %q in %v", name, seen)
		}
	}
}

type recorder struct {
	level trace.Level
	emit  func(*trace.Event)
}

func (r recorder) Emit(ev *trace.Event) { r.emit(ev) }
func (r recorder) Flush() error         { return nil }
func (r recorder) Close() error         { return nil }
func (r recorder) Level() trace.Level   { return r.level }
func (r recorder) Enabled() bool        { return r.level > trace.LevelOff }

func TestListSourceFilesAndExpandInputs(t *testing.T) {
	dir := t.TempDir()
	b := writeSource(t, dir, "b.vs", "")
	a := writeSource(t, dir, "nested/a.vs", "")
	writeSource(t, dir, "notes.txt", "")

	files, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatalf("ListSourceFiles: %v", err)
	}
	if want := []string{b, a}; !reflect.DeepEqual(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}

	explicit := filepath.Join(dir, "missing.vs")
	got, err := ExpandInputs([]string{explicit, dir})
	if err != nil {
		t.Fatalf("ExpandInputs: %v", err)
	}
	if want := []string{explicit, b, a}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandInputs = %v, want %v", got, want)
	}
}
