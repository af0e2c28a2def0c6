package source

import (
	"fmt"
	"strings"
)

// Span is an inclusive range [Min, Max] of source positions.
// Min.Index <= Max.Index for every span produced by the front end.
type Span struct {
	Min Position
	Max Position
}

// NewSpan builds a span from two positions.
func NewSpan(min, max Position) Span {
	return Span{Min: min, Max: max}
}

// At returns the one-character span at p.
func At(p Position) Span {
	return Span{Min: p, Max: p}
}

// Void returns the sentinel for synthetic or absent locations.
func Void() Span {
	return Span{}
}

// IsVoid reports whether s is the void sentinel.
func (s Span) IsVoid() bool {
	return s.Min.IsVoid() && s.Max.IsVoid()
}

// Filename returns the file the span points into.
func (s Span) Filename() string {
	return s.Min.Filename
}

// Len returns the number of runes covered by s.
func (s Span) Len() int {
	if s.IsVoid() {
		return 0
	}
	return s.Max.Index - s.Min.Index + 1
}

// MultiLine reports whether the span crosses a line break.
func (s Span) MultiLine() bool {
	return s.Max.Line != s.Min.Line
}

// Cover returns the smallest span containing both s and other.
// A void operand is ignored.
func (s Span) Cover(other Span) Span {
	if s.IsVoid() {
		return other
	}
	if other.IsVoid() {
		return s
	}
	if other.Min.Index < s.Min.Index {
		s.Min = other.Min
	}
	if other.Max.Index > s.Max.Index {
		s.Max = other.Max
	}
	return s
}

// Snippet returns the covered source text.
func (s Span) Snippet() string {
	if s.IsVoid() {
		return ""
	}
	runes := []rune(s.Min.Text)
	lo, hi := s.Min.Index, s.Max.Index+1
	if lo > len(runes) {
		lo = len(runes)
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if hi < lo {
		return ""
	}
	return string(runes[lo:hi])
}

// Line returns the source line containing s.Min, without the newline.
func (s Span) Line() string {
	if s.IsVoid() {
		return ""
	}
	return LineOf(s.Min.Text, s.Min.Line)
}

func (s Span) String() string {
	if s.IsVoid() {
		return "<Void>"
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.Filename(), s.Min.Line+1, s.Min.Column+1, s.Max.Line+1, s.Max.Column+1)
}

// LineOf returns line number n (0-based) of text, or "" when out of range.
func LineOf(text string, n int) string {
	if n < 0 {
		return ""
	}
	for i := 0; i < n; i++ {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return ""
		}
		text = text[nl+1:]
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		return text[:nl]
	}
	return text
}
