package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.vs", "hello world", 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Тот же путь — новая версия файла
	id2 := fs.Add("test.vs", "hello universe", 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	f, ok := fs.GetByPath("test.vs")
	if !ok {
		t.Fatal("Expected file to exist after Add")
	}
	if f.ID != id2 || f.Text != "hello universe" {
		t.Errorf("GetByPath returned stale version: %+v", f)
	}
	if fs.Get(id1).Text != "hello world" {
		t.Error("old version must stay addressable by id")
	}
	if fs.Get(FileID(99)) != nil {
		t.Error("unknown id must return nil")
	}
}

func TestFileSetLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.vs")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("use std;\r\nlet x = 1;\rfunc f() {}")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Text != "use std;\nlet x = 1;\nfunc f() {}" {
		t.Errorf("Text = %q", f.Text)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM")
	}
	if f.Flags&FileNormalizedNewlines == 0 {
		t.Error("expected FileNormalizedNewlines")
	}
	if f.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", f.LineCount())
	}
	if got := f.GetLine(1); got != "let x = 1;" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(7); got != "" {
		t.Errorf("GetLine(7) = %q", got)
	}
}

func TestFileSetLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.vs")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("<stdin>", "a\r\nb")
	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual")
	}
	if f.Text != "a\nb" {
		t.Errorf("Text = %q", f.Text)
	}
	if len(f.LineIdx) != 1 || f.LineIdx[0] != 1 {
		t.Errorf("LineIdx = %v", f.LineIdx)
	}
	start := f.Start()
	if start.Filename != "<stdin>" || start.Index != 0 {
		t.Errorf("Start() = %+v", start)
	}
}
