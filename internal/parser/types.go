package parser

import (
	"vesuvius/internal/ast"
	"vesuvius/internal/token"
)

// parseType: name ('::' name)* ('<' Type (',' Type)* '>')?
func (p *Parser) parseType() (ast.NodeID, error) {
	first, err := p.expectIdent("a type name")
	if err != nil {
		return ast.NoNodeID, err
	}
	parts := []string{first.Text}
	span := first.Span

	for p.at(token.DoubleColon) {
		p.advance()
		part, err := p.expectIdent("a type name after `::`")
		if err != nil {
			return ast.NoNodeID, err
		}
		parts = append(parts, part.Text)
		span = span.Cover(part.Span)
	}

	var args []ast.NodeID
	if p.at(token.LCarat) {
		p.advance()
		for {
			arg, err := p.parseType()
			if err != nil {
				return ast.NoNodeID, err
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		end, err := p.expect(token.RCarat, "`,` or `>` in the type arguments")
		if err != nil {
			return ast.NoNodeID, err
		}
		span = span.Cover(end.Span)
	}

	return p.arenas.Nodes.NewType(span, parts, args), nil
}
