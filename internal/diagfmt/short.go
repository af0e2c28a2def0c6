package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"vesuvius/internal/diag"
	"vesuvius/internal/source"
)

// Short пишет диагностику одной строкой: "severity CODE path:line:col message".
// С opts.ShowNotes за ней следуют строки "note CODE ..." в исходном порядке.
func Short(w io.Writer, d diag.Diagnostic, opts BannerOpts) error {
	sev := strings.ToLower(d.Severity.String())
	if err := writeShortLine(w, sev, d.Code, d.Filename(), d.Span, d.Message, opts); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, note := range d.Notes {
		name := note.Span.Filename()
		if name == "" {
			name = d.Filename()
		}
		if err := writeShortLine(w, "note", d.Code, name, note.Span, note.Msg, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeShortLine(w io.Writer, sev string, code diag.Code, name string, sp source.Span, msg string, opts BannerOpts) error {
	msg = strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
	_, err := fmt.Fprintf(w, "%s %s %s:%d:%d %s\n",
		sev, code.ID(), displayPath(name, opts.PathMode, opts.BaseDir),
		sp.Min.Line+1, sp.Min.Column+1, msg)
	return err
}
