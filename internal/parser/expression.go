package parser

import (
	"fmt"

	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/token"
)

// Уровни приоритета, от слабого к сильному:
//
//	Addition       := Multiplication (('+'|'-') Multiplication)*
//	Multiplication := Power (('*'|'/') Power)*
//	Power          := Term ('**' Term)*
//	Term           := Atom postfix*
//	Atom           := '-' Atom | '!' Atom | Literal
//
// Все бинарные уровни сворачиваются влево, включая '**'.
func (p *Parser) parseExpression(data parseData) (ast.NodeID, error) {
	return p.parseAddition(data)
}

func (p *Parser) parseAddition(data parseData) (ast.NodeID, error) {
	return p.parseLeftFold(data, p.parseMultiplication, token.Plus, token.Minus)
}

func (p *Parser) parseMultiplication(data parseData) (ast.NodeID, error) {
	return p.parseLeftFold(data, p.parsePower, token.Astrisk, token.Slash)
}

func (p *Parser) parsePower(data parseData) (ast.NodeID, error) {
	return p.parseLeftFold(data, p.parseTerm, token.DoubleAstrisk)
}

// parseLeftFold: next (op next)*, свёртка влево.
func (p *Parser) parseLeftFold(data parseData, next func(parseData) (ast.NodeID, error), ops ...token.Kind) (ast.NodeID, error) {
	left, err := next(data)
	if err != nil {
		return ast.NoNodeID, err
	}
	for {
		op, ok := p.atAny(ops)
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next(data)
		if err != nil {
			return ast.NoNodeID, err
		}
		if left, err = p.fold(op, left, right); err != nil {
			return ast.NoNodeID, err
		}
	}
}

func (p *Parser) atAny(kinds []token.Kind) (token.Kind, bool) {
	cur := p.peek().Kind
	for _, k := range kinds {
		if cur == k {
			return k, true
		}
	}
	return token.Invalid, false
}

var foldKinds = map[token.Kind]ast.NodeKind{
	token.Plus:          ast.Addition,
	token.Minus:         ast.Subtraction,
	token.Astrisk:       ast.Multiplication,
	token.Slash:         ast.Division,
	token.DoubleAstrisk: ast.Power,
}

func (p *Parser) fold(op token.Kind, left, right ast.NodeID) (ast.NodeID, error) {
	kind, ok := foldKinds[op]
	if !ok {
		return ast.NoNodeID, diag.Internal(fmt.Sprintf("Operator `%s` reached a binary fold it does not belong to.", op))
	}
	return p.arenas.Nodes.NewBinary(kind, left, right), nil
}

// parseAtom: '-' Atom | '!' Atom | Literal
func (p *Parser) parseAtom(data parseData) (ast.NodeID, error) {
	var kind ast.NodeKind
	switch {
	case p.at(token.Minus):
		kind = ast.Opposite
	case p.at(token.Bang):
		kind = ast.Invert
	default:
		return p.parseLiteral()
	}
	op := p.advance()
	value, err := p.parseAtom(data)
	if err != nil {
		return ast.NoNodeID, err
	}
	return p.arenas.Nodes.NewUnary(kind, op.Span.Cover(p.spanOf(value)), value), nil
}

// parseLiteral: Identifier | Character | String | Integer | Float
func (p *Parser) parseLiteral() (ast.NodeID, error) {
	tok := p.peek()
	var lit ast.LiteralData
	switch tok.Kind {
	case token.Identifier:
		lit = ast.LiteralData{Kind: ast.LitName, Text: tok.Text}
	case token.Character:
		lit = ast.LiteralData{Kind: ast.LitCharacter, Char: tok.Char}
	case token.String:
		lit = ast.LiteralData{Kind: ast.LitString, Text: tok.Text}
	case token.Integer:
		lit = ast.LiteralData{Kind: ast.LitInteger, Int: tok.Int}
	case token.Float:
		lit = ast.LiteralData{Kind: ast.LitFloat, Float: tok.Float}
	default:
		return ast.NoNodeID, p.missing("an expression")
	}
	p.advance()
	return p.arenas.Nodes.NewLiteral(tok.Span, lit), nil
}
