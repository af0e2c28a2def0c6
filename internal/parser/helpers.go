package parser

import (
	"fmt"
	"strings"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/source"
	"vesuvius/internal/token"
)

// peek — текущий токен. За концом потока — синтетический Eof.
func (p *Parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Kind: token.Eof, Span: p.endSpan()}
}

func (p *Parser) endSpan() source.Span {
	if n := len(p.tokens); n > 0 {
		return p.tokens[n-1].Span
	}
	return p.lastSpan
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atKeyword(kw string) bool {
	return p.peek().IsIdent(kw)
}

// advance — съедает текущий токен и обновляет lastSpan. Eof не съедается.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.Eof {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// expect — ожидаем конкретный токен; иначе MissingToken на текущем.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.missing(what)
}

// expectIdent — ожидаем идентификатор.
func (p *Parser) expectIdent(what string) (token.Token, error) {
	return p.expect(token.Identifier, what)
}

// missing строит MissingToken на текущем токене: "Expected <what>, found <tok>."
func (p *Parser) missing(what string) error {
	tok := p.peek()
	return p.err(diag.SynMissingToken, tok.Span, fmt.Sprintf("Expected %s, found %s.", what, describe(tok)))
}

// err возвращает фатальную диагностику парсера
func (p *Parser) err(code diag.Code, sp source.Span, msg string) error {
	return diag.Parser(diag.SevError, code, sp, msg)
}

// warn отдаёт предупреждение в Reporter и продолжает разбор
func (p *Parser) warn(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(p.opts.Reporter, code, sp, msg).Emit()
}

func (p *Parser) spanOf(id ast.NodeID) source.Span {
	if n := p.arenas.Nodes.Get(id); n != nil {
		return n.Span
	}
	return source.Void()
}

// describe — человекочитаемое имя токена для сообщений
func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.Eof:
		return "end of input"
	case tok.Kind.IsLiteral():
		return "`" + tok.Value() + "`"
	default:
		return "`" + tok.Kind.Lexeme() + "`"
	}
}

// quoteList: ["a", "b", "c"] → "`a`, `b` or `c`"
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "`" + it + "`"
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
