package parser

import (
	"github.com/rtmath/crom/internal/ast"
	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/types"
)

// Block parses a brace-delimited statement list into a chain of
// CHAIN_NODEs, stopping at '}' or EOF (original_source/parser.c's
// Block).
func (p *Parser) Block(_ bool) *astNode {
	n := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
	current := n

	for !p.nextTokenIs(token.RBRACE) && !p.nextTokenIs(token.EOF) {
		next := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
		current.SetLeft(p.Statement(unused))
		current.SetRight(next)
		current = next
	}

	p.consume(token.RBRACE, "Block(): Expected '}' after Block, got '%s' instead.", p.next.Kind)
	return n
}

// Expression parses one expression at Assignment precedence
// (original_source/parser.c's Expression).
func (p *Parser) Expression(_ bool) *astNode {
	return p.parse(Assignment)
}

// Statement parses one top-level statement: if/while/for, or an
// expression statement terminated by ';' (optional after an enum,
// struct, or function definition, original_source/parser.c's
// Statement).
func (p *Parser) Statement(_ bool) *astNode {
	if p.match(token.IF) {
		return p.IfStmt(unused)
	}
	if p.match(token.WHILE) {
		return p.WhileStmt(unused)
	}
	if p.match(token.FOR) {
		return p.ForStmt(unused)
	}

	result := p.Expression(unused)

	ann := result.Annotation
	if ann.Ostensible == types.Enum || ann.Ostensible == types.Struct || ann.IsFunction {
		p.match(token.SEMICOLON)
	} else {
		p.consume(token.SEMICOLON, "Statement(): A ';' is expected after an expression statement, got '%s' instead", p.next.Kind)
	}

	return result
}

// IfStmt parses `if (cond) { ... }` with an optional `else` or
// `else if` tail, each branch running in its own scope
// (original_source/parser.c's IfStmt).
func (p *Parser) IfStmt(_ bool) *astNode {
	p.consume(token.LPAREN, "IfStmt(): Expected '(' after IF token, got '%s' instead", p.next.Kind)
	condition := p.Expression(unused)
	p.consume(token.RPAREN, "IfStmt(): Expected ')' after IF condition, got '%s' instead", p.next.Kind)

	p.consume(token.LBRACE, "IfStmt(): Expected '{', got '%s' instead", p.next.Kind)

	p.scope.Begin()
	bodyIfTrue := p.Block(unused)
	p.scope.End()
	var bodyIfFalse *astNode

	if p.match(token.ELSE) {
		if p.match(token.IF) {
			bodyIfFalse = p.IfStmt(unused)
		} else {
			p.consume(token.LBRACE, "IfStmt(): Expected block starting with '{' after ELSE, got '%s' instead", p.next.Kind)
			p.scope.Begin()
			bodyIfFalse = p.Block(unused)
			p.scope.End()
		}
	}

	return ast.New(ast.IfNode, token.Token{}, types.None(), condition, bodyIfTrue, bodyIfFalse)
}

// TernaryIfStmt parses the `? true-expr : false-expr` tail of a
// parenthesized condition into the same IF_NODE shape as IfStmt
// (original_source/parser.c's TernaryIfStmt). A lone ':' is always a
// lexical error in this grammar (spec.md §7), so this path is only
// reachable once that design changes.
func (p *Parser) TernaryIfStmt(condition *astNode) *astNode {
	p.consume(token.QUESTIONMARK, "TernaryIfStmt(): Expected '?' after Ternary Condition, got '%s' instead", p.next.Kind)
	ifTrue := p.Expression(unused)

	p.consume(token.COLON, "TernaryIfStmt(): Expected ':' after Ternary Statement, got '%s' instead", p.next.Kind)
	ifFalse := p.Expression(unused)

	return ast.New(ast.IfNode, token.Token{}, types.None(), condition, ifTrue, ifFalse)
}

// WhileStmt parses `while (cond) { ... }` (original_source/parser.c's
// WhileStmt — the condition has no surrounding parens in the original
// grammar; kept as-is).
func (p *Parser) WhileStmt(_ bool) *astNode {
	condition := p.Expression(unused)
	p.consume(token.LBRACE, "WhileStmt(): Expected '{' after While condition, got '%s' instead", p.next.Kind)
	block := p.Block(unused)
	p.match(token.SEMICOLON)
	return ast.New(ast.WhileNode, token.Token{}, types.None(), condition, nil, block)
}

// ForStmt desugars `for (init; cond; step) { body }` into a
// STATEMENT_NODE running init followed by a WHILE_NODE whose body has
// step appended as its final statement (original_source/parser.c's
// ForStmt).
func (p *Parser) ForStmt(_ bool) *astNode {
	p.consume(token.LPAREN, "ForStmt(): Expected '(' after For, got '%s instead", p.next.Kind)

	initialization := p.Statement(unused)
	condition := p.Statement(unused)
	afterLoop := p.Expression(unused)

	p.consume(token.RPAREN, "ForStmt(): Expected ')' after For, got '%s' instead", p.next.Kind)
	p.consume(token.LBRACE, "ForStmt(): Expected '{' after For, got '%s' instead", p.next.Kind)
	body := p.Block(unused)

	last := body
	for last.Right() != nil {
		last = last.Right()
	}
	last.SetRight(afterLoop)

	whileNode := ast.New(ast.WhileNode, token.Token{}, types.None(), condition, nil, body)
	return ast.New(ast.StatementNode, token.Token{}, types.None(), initialization, nil, whileNode)
}

// Break parses a bare `break` statement (original_source/parser.c's
// Break).
func (p *Parser) Break(_ bool) *astNode {
	if !p.nextTokenIs(token.SEMICOLON) {
		p.fatalf(p.next, "Break(): Expected ';' after Break, got '%s' instead", p.next.Kind)
	}
	return ast.New(ast.BreakNode, token.Token{}, types.None(), nil, nil, nil)
}

// Continue parses a bare `continue` statement
// (original_source/parser.c's Continue).
func (p *Parser) Continue(_ bool) *astNode {
	if !p.nextTokenIs(token.SEMICOLON) {
		p.fatalf(p.next, "Continue(): Expected ';' after Continue, got '%s' instead", p.next.Kind)
	}
	return ast.New(ast.ContinueNode, token.Token{}, types.None(), nil, nil, nil)
}

// Return parses `return` with an optional trailing expression
// (original_source/parser.c's Return).
func (p *Parser) Return(_ bool) *astNode {
	var expr *astNode
	ann := types.FromTypeKeyword(token.VOID, p.current.Line)

	if !p.nextTokenIs(token.SEMICOLON) {
		expr = p.Expression(unused)
		ann = expr.Annotation
	}

	return ast.New(ast.ReturnNode, token.Token{}, ann, expr, nil, nil)
}
