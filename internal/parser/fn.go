package parser

import (
	"vesuvius/internal/ast"
	"vesuvius/internal/token"
)

// parseFunction: func name ( args ) : Type { body }
func (p *Parser) parseFunction() (ast.NodeID, error) {
	kw := p.advance() // func

	name, err := p.expectIdent("function name after `func`")
	if err != nil {
		return ast.NoNodeID, err
	}
	if _, err = p.expect(token.LParenthesis, "`(` after the function name"); err != nil {
		return ast.NoNodeID, err
	}

	var params []ast.Param
	if !p.at(token.RParenthesis) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return ast.NoNodeID, err
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err = p.expect(token.RParenthesis, "`,` or `)` in the argument list"); err != nil {
		return ast.NoNodeID, err
	}
	if _, err = p.expect(token.Colon, "`:` before the return type"); err != nil {
		return ast.NoNodeID, err
	}
	ret, err := p.parseType()
	if err != nil {
		return ast.NoNodeID, err
	}
	if _, err = p.expect(token.LBrace, "`{` to open the function body"); err != nil {
		return ast.NoNodeID, err
	}

	body := parseData{allowAssign: true, allowMutable: true}
	var stmts []ast.NodeID
	for !p.at(token.RBrace) {
		if p.at(token.Eof) {
			return ast.NoNodeID, p.missing("`}` to close the function body")
		}
		stmt, err := p.parseBodyStatement(body)
		if err != nil {
			return ast.NoNodeID, err
		}
		stmts = append(stmts, stmt)
	}
	end := p.advance() // }

	return p.arenas.Nodes.NewFunction(kw.Span.Cover(end.Span), ast.FunctionData{
		Name:   name.Text,
		Params: params,
		Return: ret,
		Body:   stmts,
	}), nil
}

// parseParam: name : Type
func (p *Parser) parseParam() (ast.Param, error) {
	name, err := p.expectIdent("argument name")
	if err != nil {
		return ast.Param{}, err
	}
	if _, err = p.expect(token.Colon, "`:` after the argument name"); err != nil {
		return ast.Param{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name.Text, Type: typ, Span: name.Span.Cover(p.spanOf(typ))}, nil
}

// parseBodyStatement: let-binding | Expression [= Expression] ;
func (p *Parser) parseBodyStatement(data parseData) (ast.NodeID, error) {
	if p.atKeyword(token.KwLet) {
		return p.parseVariable(data)
	}

	nested := data
	nested.allowAssign = false

	expr, err := p.parseExpression(nested)
	if err != nil {
		return ast.NoNodeID, err
	}
	if data.allowAssign && p.at(token.Equals) {
		p.advance()
		value, err := p.parseExpression(nested)
		if err != nil {
			return ast.NoNodeID, err
		}
		expr = p.arenas.Nodes.NewAssign(p.spanOf(expr).Cover(p.spanOf(value)), expr, value)
	}
	if _, err = p.expect(token.Eol, "`;` after the expression"); err != nil {
		return ast.NoNodeID, err
	}
	return expr, nil
}
