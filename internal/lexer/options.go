package lexer

import (
	"vesuvius/internal/diag"
	"vesuvius/internal/source"
)

type Options struct {
	// Reporter получает предупреждения; может быть nil — тогда они теряются.
	// Фатальные ошибки возвращаются из Next/Tokenize, а не через Reporter.
	Reporter diag.Reporter
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
}

// fail records a fatal diagnostic; Next keeps returning it afterwards.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) error {
	d := diag.Lexer(diag.SevError, code, sp, msg)
	lx.err = d
	return d
}
