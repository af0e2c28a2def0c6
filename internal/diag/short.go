package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     int
	Column   int
	Message  string
}

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation: "severity CODE path:line:col message". Lines and columns are
// 1-based. Notes follow as "note" entries when includeNotes is set.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendShort(rendered, &diags[i], includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return false
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendShort(out []shortDiagnostic, d *Diagnostic, includeNotes bool) []shortDiagnostic {
	out = append(out, shortDiagnostic{
		Severity: strings.ToLower(d.Severity.String()),
		Code:     d.Code.ID(),
		Path:     normalizePath(d.Filename()),
		Line:     d.Span.Min.Line + 1,
		Column:   d.Span.Min.Column + 1,
		Message:  sanitizeMessage(d.Message),
	})

	if includeNotes {
		for _, note := range d.Notes {
			path := note.Span.Filename()
			if path == "" {
				path = d.Filename()
			}
			out = append(out, shortDiagnostic{
				Severity: "note",
				Code:     d.Code.ID(),
				Path:     normalizePath(path),
				Line:     note.Span.Min.Line + 1,
				Column:   note.Span.Min.Column + 1,
				Message:  sanitizeMessage(note.Msg),
			})
		}
	}
	return out
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
