package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"vesuvius/internal/diag"
)

// Format — формат потокового вывода диагностик.
type Format uint8

const (
	FormatBanner Format = iota
	FormatShort
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatShort:
		return "short"
	case FormatJSON:
		return "json"
	default:
		return "banner"
	}
}

// ParseFormat разбирает имя формата.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "banner", "pretty":
		return FormatBanner, nil
	case "short":
		return FormatShort, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatBanner, fmt.Errorf("unknown diagnostics format %q (want banner, short or json)", s)
}

// StreamReporter печатает диагностики по мере поступления. Безопасен для
// конкурентного использования: каждая диагностика пишется целиком.
// JSON-формат пишет по одному объекту на строку (NDJSON).
type StreamReporter struct {
	mu       sync.Mutex
	w        io.Writer
	format   Format
	banner   BannerOpts
	json     JSONOpts
	quiet    bool // не печатать предупреждения
	warnings int
	errors   int
	written  int
}

// NewStreamReporter creates a reporter writing to w.
func NewStreamReporter(w io.Writer, format Format, banner BannerOpts, jsonOpts JSONOpts) *StreamReporter {
	return &StreamReporter{w: w, format: format, banner: banner, json: jsonOpts}
}

// SetQuiet подавляет печать предупреждений; счётчики продолжают расти.
func (r *StreamReporter) SetQuiet(quiet bool) {
	r.mu.Lock()
	r.quiet = quiet
	r.mu.Unlock()
}

func (r *StreamReporter) Report(d diag.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.Severity.IsFatal() {
		r.errors++
	} else {
		r.warnings++
		if r.quiet {
			return
		}
	}

	switch r.format {
	case FormatShort:
		_ = Short(r.w, d, r.banner)
	case FormatJSON:
		data, err := json.Marshal(MakeDiagnosticJSON(d, r.json))
		if err != nil {
			return
		}
		_, _ = r.w.Write(append(data, '\n'))
	default:
		if r.written > 0 {
			_, _ = io.WriteString(r.w, "\n")
		}
		_ = Banner(r.w, d, r.banner)
	}
	r.written++
}

// Counts returns how many warnings and fatal diagnostics were reported.
func (r *StreamReporter) Counts() (warnings, errors int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.warnings, r.errors
}
