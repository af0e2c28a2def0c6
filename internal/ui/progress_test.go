package ui

import (
	"errors"
	"strings"
	"testing"

	"vesuvius/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("parsing", files, driver.StageValidate, nil).(*progressModel)
}

func TestApplyEventTracksStages(t *testing.T) {
	m := newTestModel("a.vs", "b.vs")

	steps := []struct {
		ev     driver.Event
		status string
		pct    float64
	}{
		{driver.Event{File: "a.vs", Stage: driver.StageRead, Status: driver.StatusWorking}, "reading", 0},
		{driver.Event{File: "a.vs", Stage: driver.StageRead, Status: driver.StatusDone}, "reading", 0.125},
		{driver.Event{File: "a.vs", Stage: driver.StageParse, Status: driver.StatusWorking}, "parsing", 0.125},
		{driver.Event{File: "a.vs", Stage: driver.StageParse, Status: driver.StatusDone}, "parsing", 0.375},
		{driver.Event{File: "a.vs", Stage: driver.StageValidate, Status: driver.StatusDone}, "done", 0.5},
	}
	for i, step := range steps {
		m.applyEvent(step.ev)
		if got := m.items[0].status; got != step.status {
			t.Fatalf("step %d: status = %q, want %q", i, got, step.status)
		}
		if got := m.percent(); got != step.pct {
			t.Fatalf("step %d: percent = %v, want %v", i, got, step.pct)
		}
	}
	if m.finished() != 1 {
		t.Fatalf("finished = %d, want 1", m.finished())
	}
}

func TestApplyEventErrorIsSticky(t *testing.T) {
	m := newTestModel("a.vs")
	m.applyEvent(driver.Event{File: "a.vs", Stage: driver.StageParse, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "a.vs", Stage: driver.StageValidate, Status: driver.StatusDone})
	if m.items[0].status != "error" || m.percent() != 1 {
		t.Fatalf("status = %q, percent = %v", m.items[0].status, m.percent())
	}
}

func TestApplyEventUnknownFile(t *testing.T) {
	m := newTestModel("a.vs")
	if cmd := m.applyEvent(driver.Event{File: "zzz.vs", Stage: driver.StageLex, Status: driver.StatusDone}); cmd != nil {
		t.Fatal("unknown file must be ignored")
	}
}

func TestStageShareWithoutValidation(t *testing.T) {
	if got := stageShare(driver.StageParse, driver.StageParse); got != 1 {
		t.Fatalf("share = %v, want 1", got)
	}
	if got := stageShare("unknown", driver.StageParse); got != 0 {
		t.Fatalf("share = %v, want 0", got)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel("a.vs", "b.vs")
	m.applyEvent(driver.Event{File: "b.vs", Stage: driver.StageLex, Status: driver.StatusWorking})
	view := m.View()
	for _, want := range []string{"a.vs", "b.vs", "lexing", "queued", "(0/2)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view misses %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.vs", 20, "short.vs"},
		{"very/long/path/file.vs", 10, "very/lo..."},
		{"abcdef", 3, "abc"},
		{"файл.vs", 0, "файл.vs"},
		{"日本語.vs", 6, "日..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestApplyEventMatchesNormalizedPath(t *testing.T) {
	m := newTestModel("./src/a.vs")
	m.applyEvent(driver.Event{File: "src/a.vs", Stage: driver.StageLex, Status: driver.StatusWorking})
	if m.items[0].status != "lexing" {
		t.Fatalf("status = %q", m.items[0].status)
	}
}
