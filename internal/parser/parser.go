package parser

import (
	"vesuvius/internal/ast"
	"vesuvius/internal/diag"
	"vesuvius/internal/source"
	"vesuvius/internal/token"
)

type Options struct {
	// Reporter получает предупреждения (неизвестные заголовки). Может быть nil.
	Reporter diag.Reporter
}

// Result holds the top-level nodes of one parse. Builder owns every node.
type Result struct {
	Builder *ast.Builder
	Nodes   []ast.NodeID
}

// parseData — контекст спуска; передаётся по значению, каждый уровень
// может переопределить флаги, не затрагивая вызывающего.
type parseData struct {
	allowAssign  bool // разрешено ли `target = value` на этом уровне
	allowMutable bool // разрешён ли `let mut`
}

// Parser — состояние парсера на один поток токенов
type Parser struct {
	tokens   []token.Token
	pos      int
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
}

// Parse builds the top-level nodes for tokens. On the first fatal
// diagnostic it stops and returns the diagnostic as error with no nodes.
func Parse(tokens []token.Token, opts Options) (Result, error) {
	p := Parser{
		tokens: tokens,
		arenas: ast.NewBuilder(ast.Hints{Nodes: uint(len(tokens))}),
		opts:   opts,
	}
	nodes, err := p.parseProgram()
	if err != nil {
		return Result{Builder: p.arenas}, err
	}
	return Result{Builder: p.arenas, Nodes: nodes}, nil
}

// parseProgram — основной цикл верхнего уровня: пропускаем ';', пока не Eof — parseGlobal.
func (p *Parser) parseProgram() ([]ast.NodeID, error) {
	var nodes []ast.NodeID
	p.skipEol()
	for !p.at(token.Eof) {
		id, err := p.parseGlobal()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, id)
		p.skipEol()
	}
	return nodes, nil
}

func (p *Parser) skipEol() {
	for p.at(token.Eol) {
		p.advance()
	}
}
