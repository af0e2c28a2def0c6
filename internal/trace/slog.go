package trace

import (
	"context"
	"log/slog"
	"sort"
)

// SlogTracer forwards events to a structured logger: span ends and points
// at Info, span begins at Debug, errors at Error.
type SlogTracer struct {
	logger  *slog.Logger
	level   Level
	session string
}

// NewSlogTracer creates a tracer writing through logger.
func NewSlogTracer(logger *slog.Logger, level Level, session string) *SlogTracer {
	return &SlogTracer{
		logger:  logger.With(slog.String("session", session)),
		level:   level,
		session: session,
	}
}

func (t *SlogTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Kind, ev.Scope) {
		return
	}
	ev.Session = t.session

	lvl := slog.LevelInfo
	switch ev.Kind {
	case KindSpanBegin:
		lvl = slog.LevelDebug
	case KindError:
		lvl = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("kind", ev.Kind.String()),
		slog.String("scope", ev.Scope.String()),
	}
	if ev.SpanID != 0 {
		attrs = append(attrs, slog.Uint64("span", ev.SpanID))
	}
	if ev.ParentID != 0 {
		attrs = append(attrs, slog.Uint64("parent", ev.ParentID))
	}
	if ev.Detail != "" {
		attrs = append(attrs, slog.String("detail", ev.Detail))
	}
	if ev.Kind == KindSpanEnd {
		attrs = append(attrs, slog.Duration("duration", ev.Duration))
	}
	keys := make([]string, 0, len(ev.Extra))
	for k := range ev.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.String(k, ev.Extra[k]))
	}

	t.logger.LogAttrs(context.Background(), lvl, ev.Name, attrs...)
}

func (t *SlogTracer) Flush() error  { return nil }
func (t *SlogTracer) Close() error  { return nil }
func (t *SlogTracer) Level() Level  { return t.level }
func (t *SlogTracer) Enabled() bool { return t.level > LevelOff }
