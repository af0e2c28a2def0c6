package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"vesuvius/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding. Fatal diagnostics are also returned as
// errors by the stage that raised them.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Context  *Context
	Span     source.Span
	Message  string
	Notes    []Note
}

func New(sev Severity, code Code, ctx *Context, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Context:  ctx,
		Span:     span,
		Message:  msg,
	}
}

// Internal reports a violated front-end invariant. Always critical.
func Internal(msg string) Diagnostic {
	return New(SevCritical, InternalInvariant, nil, source.Void(), msg)
}

// Lexer builds a tokenizer diagnostic attributed to the global context.
func Lexer(sev Severity, code Code, span source.Span, msg string) Diagnostic {
	return New(sev, code, Global(), span, msg)
}

// Parser builds a parser diagnostic attributed to the global context.
func Parser(sev Severity, code Code, span source.Span, msg string) Diagnostic {
	return New(sev, code, Global(), span, msg)
}

// Validator builds a validator error inside ctx.
func Validator(code Code, ctx *Context, span source.Span, msg string) Diagnostic {
	return New(SevError, code, ctx, span, msg)
}

// CommandLine builds an error pointing at args[index] inside the argument
// line joined with single spaces.
func CommandLine(code Code, args []string, index int, msg string) Diagnostic {
	line := strings.Join(args, " ")
	pos := source.NewPosition("<Void>", line)
	for i := 0; i < index && i < len(args); i++ {
		for _, r := range args[i] {
			pos.Advance(r)
		}
		pos.Advance(' ')
	}
	start := pos
	if index >= 0 && index < len(args) && args[index] != "" {
		for n := utf8.RuneCountInString(args[index]) - 1; n > 0; n-- {
			pos.Advance(' ')
		}
	}
	return New(SevError, code, CommandLineContext(), source.NewSpan(start, pos), msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Prefix returns the banner heading for the diagnostic's category.
func (d Diagnostic) Prefix() string {
	return d.Code.Category().Prefix()
}

// Title returns the short name of the diagnostic kind.
func (d Diagnostic) Title() string {
	return d.Code.Title()
}

// Filename returns the file the diagnostic points into, or "<Void>".
func (d Diagnostic) Filename() string {
	if name := d.Span.Filename(); name != "" {
		return name
	}
	return "<Void>"
}

func (d Diagnostic) Error() string {
	if d.Span.IsVoid() {
		return fmt.Sprintf("%s %s: %s: %s", d.Prefix(), d.Severity, d.Title(), d.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s: %s", d.Span.Min, d.Prefix(), d.Severity, d.Title(), d.Message)
}
