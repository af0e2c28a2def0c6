package lexer

import (
	"vesuvius/internal/source"
)

// Cursor представляет собой позицию в тексте, разбитом на руны
type Cursor struct {
	src  []rune
	Pos  source.Position
	last source.Position // позиция последней съеденной руны
}

// NewCursor creates a new cursor at the start of text.
func NewCursor(filename, text string) Cursor {
	start := source.NewPosition(filename, text)
	return Cursor{
		src:  []rune(text),
		Pos:  start,
		last: start,
	}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Pos.Index >= len(c.src)
}

// Peek читает текущую руну, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.src[c.Pos.Index]
}

// Peek2 читает текущую и следующую руну, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.Pos.Index+1 >= len(c.src) {
		return 0, 0, false
	}
	return c.src[c.Pos.Index], c.src[c.Pos.Index+1], true
}

// Bump перемещает курсор на одну руну вперед и возвращает прочитанную руну
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.src[c.Pos.Index]
	c.last = c.Pos
	c.Pos.Advance(r)
	return r
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark source.Position

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Pos)
}

// SpanFrom returns the inclusive span from m to the last consumed rune.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.NewSpan(source.Position(m), c.last)
}

// Here returns the one-character span at the current rune.
func (c *Cursor) Here() source.Span {
	return source.At(c.Pos)
}

// Eat consumes the next rune if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.src[c.Pos.Index] == r {
		c.Bump()
		return true
	}
	return false
}
