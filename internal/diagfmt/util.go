package diagfmt

import (
	"fmt"

	"vesuvius/internal/source"
)

func formatSpan(span source.Span) string {
	if span.IsVoid() {
		return "<Void>"
	}
	return fmt.Sprintf("%d:%d-%d:%d", span.Min.Line+1, span.Min.Column+1, span.Max.Line+1, span.Max.Column+1)
}
