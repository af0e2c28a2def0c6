package token

import "strings"

// escapes maps the character after '\' to its value.
var escapes = map[rune]rune{
	'\\': '\\',
	'n':  '\n',
	't':  '\t',
	'"':  '"',
	'\'': '\'',
	'r':  '\r',
}

// Unescape resolves the character following a backslash.
func Unescape(ch rune) (rune, bool) {
	r, ok := escapes[ch]
	return r, ok
}

var reverse = map[rune]string{
	'\\': `\\`,
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
}

// Quote wraps s in quote, escaping the quote character and control characters
// from the escape table.
func Quote(s string, quote rune) string {
	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		if r == quote {
			b.WriteRune('\\')
			b.WriteRune(r)
			continue
		}
		if esc, ok := reverse[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteRune(quote)
	return b.String()
}
