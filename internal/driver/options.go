package driver

import (
	"errors"
	"fmt"
	"log/slog"

	"vesuvius/internal/diag"
	"vesuvius/internal/observ"
)

// SourceExt is the extension of Vesuvius source files.
const SourceExt = ".vs"

// Options configure one driver run. The zero value tokenizes and parses
// without validation, caching, progress or timings.
type Options struct {
	// MaxDiagnostics caps each per-file Bag; 0 — без ограничения.
	MaxDiagnostics int
	// Reporter receives warnings as they are raised, in addition to the
	// per-file Bag. Fatal diagnostics are returned as errors instead.
	Reporter diag.Reporter
	// Validate runs the name validator after a successful parse.
	Validate bool
	// Jobs limits ParseFiles concurrency; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache stores token streams of warning-free files. May be nil.
	Cache *DiskCache
	// Timer accumulates per-stage durations. May be nil.
	Timer *observ.Timer
	// Progress receives per-file stage events. May be nil.
	Progress ProgressSink
	// Logger receives debug records such as failed cache writes. May be nil.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) reporter(bag *diag.Bag) diag.Reporter {
	if o.Reporter == nil {
		return diag.BagReporter{Bag: bag}
	}
	return diag.MultiReporter{diag.BagReporter{Bag: bag}, o.Reporter}
}

// LoadError reports a source file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// AsDiagnostic extracts the fatal diagnostic carried by err, if any.
func AsDiagnostic(err error) (diag.Diagnostic, bool) {
	var d diag.Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return diag.Diagnostic{}, false
}
