package source

import "fmt"

// Position is a point in source text. Index counts runes from the start of
// Text; Line and Column are 0-based and Column restarts after every '\n'.
// Positions are plain values: copying one fixes a snapshot.
type Position struct {
	Index    int
	Line     int
	Column   int
	Filename string
	Text     string
}

// NewPosition returns the position of the first character of text.
func NewPosition(filename, text string) Position {
	return Position{Filename: filename, Text: text}
}

// Advance moves the position past ch.
func (p *Position) Advance(ch rune) {
	p.Index++
	if ch == '\n' {
		p.Line++
		p.Column = 0
		return
	}
	p.Column++
}

// IsVoid reports whether p is the synthetic zero position.
func (p Position) IsVoid() bool {
	return p == Position{}
}

// String renders p as file:line:col with 1-based line and column.
func (p Position) String() string {
	name := p.Filename
	if name == "" {
		name = "<Void>"
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line+1, p.Column+1)
}
