package diagfmt

import (
	"github.com/fatih/color"

	"vesuvius/internal/diag"
)

// palette — набор цветов одного рендера. Цвета создаются заново на каждый
// вызов, чтобы явный --color=on/off не зависел от глобального color.NoColor.
type palette struct {
	enabled  bool
	rule     *color.Color
	ruleText *color.Color
	file     *color.Color
	fileBold *color.Color
	line     *color.Color
	lineBold *color.Color
	code     *color.Color
	codeBold *color.Color
	note     *color.Color
}

func newPalette(sev diag.Severity, enabled bool) palette {
	base := color.FgRed
	attrs := []color.Attribute{}
	switch sev {
	case diag.SevWarning:
		base = color.FgYellow
	case diag.SevCritical:
		attrs = append(attrs, color.ReverseVideo)
	}
	p := palette{
		enabled:  enabled,
		rule:     color.New(append([]color.Attribute{base}, attrs...)...),
		ruleText: color.New(append([]color.Attribute{base, color.Bold}, attrs...)...),
		file:     color.New(color.FgBlue),
		fileBold: color.New(color.FgBlue, color.Bold),
		line:     color.New(color.FgGreen),
		lineBold: color.New(color.FgGreen, color.Bold),
		code:     color.New(color.FgYellow),
		codeBold: color.New(color.FgYellow, color.Bold),
		note:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.rule, p.ruleText, p.file, p.fileBold, p.line, p.lineBold, p.code, p.codeBold, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) paint(c *color.Color, s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return c.Sprint(s)
}
