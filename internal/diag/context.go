package diag

import (
	"strings"

	"vesuvius/internal/source"
)

// Context is a named scope used to attribute diagnostics. Contexts form an
// immutable parent-linked chain; the root has no parent.
type Context struct {
	Name   string
	Parent *Context
	Span   source.Span
}

var global = &Context{Name: "Global"}

// Global returns the shared root context.
func Global() *Context {
	return global
}

// CommandLineContext is the context of diagnostics about the invocation itself.
func CommandLineContext() *Context {
	return &Context{Name: "Command Line"}
}

// Child returns a new context nested in c.
func (c *Context) Child(name string, span source.Span) *Context {
	return &Context{Name: name, Parent: c, Span: span}
}

// Depth returns the number of contexts from c up to the root, inclusive.
func (c *Context) Depth() int {
	n := 0
	for cur := c; cur != nil; cur = cur.Parent {
		n++
	}
	return n
}

// String joins names from the root to c with "::".
func (c *Context) String() string {
	if c == nil {
		return "<Void>"
	}
	names := make([]string, c.Depth())
	i := len(names) - 1
	for cur := c; cur != nil; cur = cur.Parent {
		names[i] = cur.Name
		i--
	}
	return strings.Join(names, "::")
}
