package parser

import (
	"vesuvius/internal/ast"
	"vesuvius/internal/token"
)

// parseTerm: Atom ( '::' name | '.' name | '[' Expression ']' | '(' args ')' )*
// После вызова цикл завершается: f()() и f().x не разбираются как цепочка.
func (p *Parser) parseTerm(data parseData) (ast.NodeID, error) {
	target, err := p.parseAtom(data)
	if err != nil {
		return ast.NoNodeID, err
	}

	nested := data
	nested.allowAssign = false

	for {
		switch {
		case p.at(token.DoubleColon), p.at(token.Period):
			kind := ast.ModuleMember
			if p.at(token.Period) {
				kind = ast.ClassMember
			}
			p.advance()
			name, err := p.expectIdent("member name")
			if err != nil {
				return ast.NoNodeID, err
			}
			target = p.arenas.Nodes.NewMember(kind, p.spanOf(target).Cover(name.Span), target, name.Text)

		case p.at(token.LBracket):
			p.advance()
			index, err := p.parseExpression(nested)
			if err != nil {
				return ast.NoNodeID, err
			}
			end, err := p.expect(token.RBracket, "`]` to close the slice")
			if err != nil {
				return ast.NoNodeID, err
			}
			target = p.arenas.Nodes.NewSlice(p.spanOf(target).Cover(end.Span), target, index)

		case p.at(token.LParenthesis):
			return p.parseCall(nested, target)

		default:
			return target, nil
		}
	}
}

// parseCall: '(' (Expression (',' Expression)*)? ')'
func (p *Parser) parseCall(data parseData, target ast.NodeID) (ast.NodeID, error) {
	p.advance() // (

	var args []ast.NodeID
	if !p.at(token.RParenthesis) {
		for {
			arg, err := p.parseExpression(data)
			if err != nil {
				return ast.NoNodeID, err
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	end, err := p.expect(token.RParenthesis, "`,` or `)` in the call arguments")
	if err != nil {
		return ast.NoNodeID, err
	}
	return p.arenas.Nodes.NewCall(p.spanOf(target).Cover(end.Span), target, args), nil
}
