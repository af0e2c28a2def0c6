package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"vesuvius/internal/source"
	"vesuvius/internal/token"
)

// SpanOutput — span в выводе: строки и колонки 1-based, индексы в рунах.
type SpanOutput struct {
	Start     int `json:"start" msgpack:"start"`
	End       int `json:"end" msgpack:"end"`
	Line      int `json:"line" msgpack:"line"`
	Column    int `json:"column" msgpack:"column"`
	EndLine   int `json:"end_line" msgpack:"end_line"`
	EndColumn int `json:"end_column" msgpack:"end_column"`
}

// TokenOutput — токен в JSON/msgpack выводе.
type TokenOutput struct {
	Kind  string     `json:"kind" msgpack:"kind"`
	Value string     `json:"value,omitempty" msgpack:"value,omitempty"`
	Span  SpanOutput `json:"span" msgpack:"span"`
}

func makeSpanOutput(sp source.Span) SpanOutput {
	return SpanOutput{
		Start:     sp.Min.Index,
		End:       sp.Max.Index,
		Line:      sp.Min.Line + 1,
		Column:    sp.Min.Column + 1,
		EndLine:   sp.Max.Line + 1,
		EndColumn: sp.Max.Column + 1,
	}
}

func makeTokenOutputs(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{Kind: tok.Kind.String(), Span: makeSpanOutput(tok.Span)}
		if tok.Kind.IsLiteral() {
			out.Value = tok.Value()
		}
		output = append(output, out)
		if tok.Kind == token.Eof {
			break
		}
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Kind.IsLiteral() {
			fmt.Fprintf(w, " %s", tok.Value())
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			tok.Span.Min.Line+1, tok.Span.Min.Column+1,
			tok.Span.Max.Line+1, tok.Span.Max.Column+1)

		if tok.Kind == token.Eof {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(makeTokenOutputs(tokens))
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(makeTokenOutputs(tokens))
}
