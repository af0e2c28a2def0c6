package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"vesuvius/internal/diag"
)

func TestStreamReporter_Counts(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf, FormatShort, BannerOpts{}, JSONOpts{})

	sp := spanOf(t, "a.vs", "abc", 0, 0)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sev := diag.SevWarning
			if i%4 == 0 {
				sev = diag.SevError
			}
			r.Report(diag.Lexer(sev, diag.LexInvalidEscape, sp, "m"))
		}(i)
	}
	wg.Wait()

	warnings, errors := r.Counts()
	if warnings != 12 || errors != 4 {
		t.Fatalf("Counts() = %d, %d; want 12, 4", warnings, errors)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 16 {
		t.Fatalf("expected 16 lines, got %d:\n%s", lines, buf.String())
	}
}

func TestStreamReporter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf, FormatShort, BannerOpts{}, JSONOpts{})
	r.SetQuiet(true)
	sp := spanOf(t, "a.vs", "x", 0, 0)
	r.Report(diag.Parser(diag.SevWarning, diag.SynInvalidHeader, sp, "Invalid header `x`."))
	r.Report(diag.Parser(diag.SevError, diag.SynMissingToken, sp, "Expected `;`, found `x`."))

	want := "error SYN2001 a.vs:1:1 Expected `;`, found `x`.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
	if w, e := r.Counts(); w != 1 || e != 1 {
		t.Fatalf("Counts() = %d, %d", w, e)
	}
}

func TestStreamReporter_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf, FormatJSON, BannerOpts{}, JSONOpts{PathMode: PathModeAsIs})
	sp := spanOf(t, "a.vs", "let x", 4, 4)
	r.Report(diag.Parser(diag.SevError, diag.SynMissingToken, sp, "m"))
	r.Report(diag.Internal("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var first DiagnosticJSON
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Code != "SYN2001" || first.Location == nil || first.Location.StartCol != 5 || first.Context != "Global" {
		t.Fatalf("unexpected first diagnostic %+v", first)
	}
	var second DiagnosticJSON
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if second.Location != nil || second.Severity != "Critical" || second.Context != "<Void>" {
		t.Fatalf("unexpected second diagnostic %+v", second)
	}
}

func TestStreamReporter_BannerSeparated(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamReporter(&buf, FormatBanner, BannerOpts{}, JSONOpts{})
	r.Report(diag.Internal("a"))
	r.Report(diag.Internal("b"))
	if strings.HasPrefix(buf.String(), "\n") || strings.Count(buf.String(), "\n\n") != 1 {
		t.Fatalf("unexpected layout:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatBanner, "pretty": FormatBanner, "short": FormatShort, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("sarif"); err == nil {
		t.Error("unknown format must fail")
	}
}
