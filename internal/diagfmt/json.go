package diagfmt

import (
	"encoding/json"
	"io"

	"vesuvius/internal/diag"
	"vesuvius/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON.
// Строки и колонки 1-based, индексы — в рунах.
type LocationJSON struct {
	File       string `json:"file"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	StartLine  int    `json:"start_line"`
	StartCol   int    `json:"start_col"`
	EndLine    int    `json:"end_line"`
	EndCol     int    `json:"end_col"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Category string        `json:"category"`
	Title    string        `json:"title"`
	Context  string        `json:"context"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation создаёт LocationJSON из Span; для void-span — nil.
func makeLocation(span source.Span, opts JSONOpts) *LocationJSON {
	if span.IsVoid() {
		return nil
	}
	return &LocationJSON{
		File:       displayPath(span.Filename(), opts.PathMode, opts.BaseDir),
		StartIndex: span.Min.Index,
		EndIndex:   span.Max.Index,
		StartLine:  span.Min.Line + 1,
		StartCol:   span.Min.Column + 1,
		EndLine:    span.Max.Line + 1,
		EndCol:     span.Max.Column + 1,
	}
}

// MakeDiagnosticJSON переводит одну диагностику в JSON-структуру.
func MakeDiagnosticJSON(d diag.Diagnostic, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Category: d.Prefix(),
		Title:    d.Title(),
		Context:  d.Context.String(),
		Message:  d.Message,
		Location: makeLocation(d.Span, opts),
	}
	if opts.IncludeNotes {
		for _, note := range d.Notes {
			out.Notes = append(out.Notes, NoteJSON{
				Message:  note.Msg,
				Location: makeLocation(note.Span, opts),
			})
		}
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		diagnostics = append(diagnostics, MakeDiagnosticJSON(items[i], opts))
	}
	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(items),
	}
}

// JSON сериализует диагностики bag с отступами.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, opts))
}
