package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"vesuvius/internal/diag"
)

// Banner печатает одну диагностику в виде баннера:
//
//	= ParserException Error ==========
//	  File `main.vs`, In Global,
//	  Line 3, Column 9
//	    let x 1
//	          ^
//	= MissingToken Error: Expected ... =
//
// Обе рамки добиваются '=' до одной ширины. Для диагностик без позиции
// (Internal) печатаются только рамки.
func Banner(w io.Writer, d diag.Diagnostic, opts BannerOpts) error {
	_, err := io.WriteString(w, renderBanner(d, opts))
	return err
}

// Pretty печатает баннеры всех диагностик bag через пустую строку.
// Ожидается bag.Sort() заранее.
func Pretty(w io.Writer, bag *diag.Bag, opts BannerOpts) error {
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := Banner(w, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func renderBanner(d diag.Diagnostic, opts BannerOpts) string {
	pal := newPalette(d.Severity, opts.Color)

	head := d.Prefix() + " " + d.Severity.String()
	tail := d.Title() + " " + d.Severity.String() + ": " + d.Message
	width := max(runewidth.StringWidth(head), runewidth.StringWidth(tail)) + 1

	var b strings.Builder
	writeRule(&b, pal, head, width)

	if !d.Span.IsVoid() {
		fmt.Fprintf(&b, "  %s %s, %s %s,\n",
			pal.paint(pal.file, "File"),
			pal.paint(pal.fileBold, "`"+displayPath(d.Filename(), opts.PathMode, opts.BaseDir)+"`"),
			pal.paint(pal.file, "In"),
			pal.paint(pal.fileBold, d.Context.String()))
		fmt.Fprintf(&b, "  %s %s, %s %s\n",
			pal.paint(pal.line, "Line"),
			pal.paint(pal.lineBold, strconv.Itoa(d.Span.Min.Line+1)),
			pal.paint(pal.line, "Column"),
			pal.paint(pal.lineBold, strconv.Itoa(d.Span.Min.Column+1)))
		writeQuote(&b, pal, d)
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			loc := ""
			if !note.Span.IsVoid() {
				loc = " (" + note.Span.Min.String() + ")"
			}
			fmt.Fprintf(&b, "  %s %s%s\n", pal.paint(pal.note, "Note:"), note.Msg, loc)
		}
	}

	writeRule(&b, pal, tail, width)
	return b.String()
}

// writeRule: "= text ====", '=' добивают строку до width+3 колонок, минимум один.
func writeRule(b *strings.Builder, pal palette, text string, width int) {
	pad := max(width-runewidth.StringWidth(text), 1)
	b.WriteString(pal.paint(pal.rule, "= "))
	b.WriteString(pal.paint(pal.ruleText, text))
	b.WriteString(pal.paint(pal.rule, " "+strings.Repeat("=", pad)))
	b.WriteByte('\n')
}

// writeQuote печатает строку исходника без ведущих пробелов и подчёркивание
// под span. Многострочный span обрезается по концу цитируемой строки.
func writeQuote(b *strings.Builder, pal palette, d diag.Diagnostic) {
	line := []rune(d.Span.Line())
	shift := 0
	for shift < len(line) && (line[shift] == ' ' || line[shift] == '\t') {
		shift++
	}

	start := d.Span.Min.Column
	end := d.Span.Max.Column + 1
	if d.Span.MultiLine() {
		end = len(line)
	}
	start = min(max(start, 0), len(line))
	end = min(end, len(line))
	// span внутри отступа: отступ режем только до начала span
	shift = min(shift, start)

	left := string(line[shift:start])
	center := ""
	if end > start {
		center = string(line[start:end])
	}
	right := string(line[max(start, end):])

	b.WriteString("    ")
	b.WriteString(pal.paint(pal.code, left))
	b.WriteString(pal.paint(pal.codeBold, center))
	b.WriteString(pal.paint(pal.code, right))
	b.WriteByte('\n')

	b.WriteString("    ")
	b.WriteString(indentLike(left))
	b.WriteString(pal.paint(pal.code, underline(center)))
	b.WriteByte('\n')
}

// underline: минимум один '^' на руну, широкая руна получает свою ширину.
func underline(center string) string {
	var b strings.Builder
	for _, r := range center {
		n := 1
		if r != '\t' {
			n = max(runewidth.RuneWidth(r), 1)
		}
		b.WriteString(strings.Repeat("^", n))
	}
	if b.Len() == 0 {
		return "^"
	}
	return b.String()
}

// indentLike строит отступ той же ширины, что s; табуляции сохраняются.
func indentLike(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
