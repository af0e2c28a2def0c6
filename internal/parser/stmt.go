package parser

import (
	"fmt"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/source"
	"vesuvius/internal/token"
)

// parseGlobal: extern name | use name | statement.
func (p *Parser) parseGlobal() (ast.NodeID, error) {
	switch {
	case p.atKeyword(token.KwExtern):
		return p.parseImport(ast.ExternalImport, "module name after `extern`")
	case p.atKeyword(token.KwUse):
		return p.parseImport(ast.LocalImport, "file name after `use`")
	default:
		return p.parseStatement(parseData{allowAssign: false, allowMutable: false})
	}
}

func (p *Parser) parseImport(kind ast.NodeKind, what string) (ast.NodeID, error) {
	kw := p.advance()
	name, err := p.expectIdent(what)
	if err != nil {
		return ast.NoNodeID, err
	}
	return p.arenas.Nodes.NewImport(kind, kw.Span.Cover(name.Span), name.Text), nil
}

// parseStatement: let-binding | header* func.
func (p *Parser) parseStatement(data parseData) (ast.NodeID, error) {
	if p.atKeyword(token.KwLet) {
		return p.parseVariable(data)
	}

	start := p.peek().Span
	headers, n, err := p.parseHeaders()
	if err != nil {
		return ast.NoNodeID, err
	}

	if !p.atKeyword(token.KwFunc) {
		if n == 0 {
			return ast.NoNodeID, p.missing("`let`, `func`, `extern`, `use` or a header")
		}
		return ast.NoNodeID, p.missing("`func` after headers")
	}

	id, err := p.parseFunction()
	if err != nil {
		return ast.NoNodeID, err
	}
	p.arenas.SetHeaders(id, headers)
	if n > 0 {
		node := p.arenas.Nodes.Get(id)
		node.Span = start.Cover(node.Span)
	}
	return id, nil
}

// parseHeaders собирает подряд идущие #[name]. Неизвестное имя — предупреждение.
func (p *Parser) parseHeaders() (ast.Headers, int, error) {
	var h ast.Headers
	n := 0
	for p.at(token.Hash) {
		p.advance()
		if _, err := p.expect(token.LBracket, "`[` after `#`"); err != nil {
			return h, n, err
		}
		name, err := p.expectIdent("header name")
		if err != nil {
			return h, n, err
		}
		if _, err := p.expect(token.RBracket, "`]` to close the header"); err != nil {
			return h, n, err
		}
		if !h.Set(name.Text) {
			p.warn(diag.SynInvalidHeader, name.Span, fmt.Sprintf("Invalid header `%s`.", name.Text))
		}
		n++
	}
	return h, n, nil
}

// parseVariable: let [mut] name [: Type] [= Expression] ;
func (p *Parser) parseVariable(data parseData) (ast.NodeID, error) {
	kw := p.advance() // let

	name, err := p.expectIdent("variable name after `let`")
	if err != nil {
		return ast.NoNodeID, err
	}

	mutable := false
	if name.Text == token.KwMut {
		if !data.allowMutable {
			return ast.NoNodeID, p.err(diag.SynInvalidMutability, name.Span, "Mutable variables are not allowed here.")
		}
		mutable = true
		if name, err = p.expectIdent("variable name after `mut`"); err != nil {
			return ast.NoNodeID, err
		}
	}

	var typ ast.NodeID
	hasType := p.at(token.Colon)
	if hasType {
		p.advance()
		if typ, err = p.parseType(); err != nil {
			return ast.NoNodeID, err
		}
	} else {
		typ = p.arenas.Nodes.NewInferredType(source.At(name.Span.Max))
	}

	value := ast.NoNodeID
	hasValue := p.at(token.Equals)
	if hasValue {
		p.advance()
		if value, err = p.parseExpression(parseData{allowAssign: false, allowMutable: data.allowMutable}); err != nil {
			return ast.NoNodeID, err
		}
	}

	if !p.at(token.Eol) {
		var absent []string
		if !hasType {
			absent = append(absent, ":")
		}
		if !hasValue {
			absent = append(absent, "=")
		}
		absent = append(absent, ";")
		return ast.NoNodeID, p.missing(quoteList(absent))
	}
	if !mutable && !hasValue {
		return ast.NoNodeID, p.err(diag.SynInvalidMutability, name.Span,
			fmt.Sprintf("Immutable variable `%s` must be initialized.", name.Text))
	}
	end := p.advance() // ;

	return p.arenas.Nodes.NewVariable(kw.Span.Cover(end.Span), ast.VariableData{
		Mutable: mutable,
		Name:    name.Text,
		Type:    typ,
		Value:   value,
	}), nil
}
