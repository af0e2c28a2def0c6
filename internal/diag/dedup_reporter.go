package diag

import "sync"

type dedupKey struct {
	code Code
	sev  Severity
	file string
	min  int
	max  int
	msg  string
}

// DedupReporter wraps another Reporter and suppresses duplicate diagnostics
// with the same code, severity, primary span and message. Safe for
// concurrent use.
type DedupReporter struct {
	mu   sync.Mutex
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{
		code: d.Code,
		sev:  d.Severity,
		file: d.Span.Filename(),
		min:  d.Span.Min.Index,
		max:  d.Span.Max.Index,
		msg:  d.Message,
	}
	r.mu.Lock()
	_, dup := r.seen[key]
	r.seen[key] = struct{}{}
	r.mu.Unlock()
	if dup {
		return
	}
	if r.next != nil {
		r.next.Report(d)
	}
}
