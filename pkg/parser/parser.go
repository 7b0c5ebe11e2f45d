package parser

import (
	"fmt"

	"github.com/juju/loggo"

	"github.com/rtmath/crom/internal/ast"
	"github.com/rtmath/crom/internal/clog"
	"github.com/rtmath/crom/internal/config"
	"github.com/rtmath/crom/internal/diag"
	"github.com/rtmath/crom/internal/symtab"
	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/types"
	"github.com/rtmath/crom/pkg/lexer"
)

// astNode is a local alias kept close to original_source/parser.c's
// `AST_Node *` spelling throughout this package's parse methods.
type astNode = ast.Node

const (
	unused    = false
	canAssign = true
)

// Parser holds all per-compile state explicitly (spec.md §9 Design
// Note: "global parser/lexer/scope state -> explicit context") —
// original_source/parser.c keeps Parser and Scope as file-scope
// mutable structs; here every field lives on one value, so nothing
// prevents two Parsers existing at once.
type Parser struct {
	lex *lexer.Lexer

	current   token.Token
	next      token.Token
	afterNext token.Token

	scope *symtab.Scope
	sink  *diag.Sink
	cfg   config.Config
	log   loggo.Logger
}

// New builds a Parser over src and primes its three-token lookahead
// (original_source's InitParser).
func New(filename, src string, cfg config.Config, sink *diag.Sink) *Parser {
	p := &Parser{
		lex:   lexer.New(filename, src, cfg),
		scope: symtab.NewScope(),
		sink:  sink,
		cfg:   cfg,
		log:   clog.Get("parser"),
	}

	// Two advances prime current/next/afterNext the way InitParser's
	// two Advance() calls do: after the first, afterNext holds the
	// first real token; after the second, next holds it and afterNext
	// holds the token after it. current stays empty until parse's own
	// first advance.
	p.advance()
	p.advance()
	return p
}

// Symbols returns the module-global symbol table built by BuildAST.
func (p *Parser) Symbols() *symtab.Table { return p.scope.Current() }

func (p *Parser) advance() {
	p.current = p.next
	p.next = p.afterNext
	p.afterNext = p.lex.NextToken()

	if p.next.Kind == token.ERROR {
		p.fatalf(p.current, "Advance(): error token encountered after token '%s': %s", p.current.Kind, p.next.Lexeme)
	}
}

func (p *Parser) nextTokenIs(kind token.Kind) bool      { return p.next.Kind == kind }
func (p *Parser) tokenAfterNextIs(kind token.Kind) bool { return p.afterNext.Kind == kind }

func (p *Parser) match(kind token.Kind) bool {
	if !p.nextTokenIs(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(kind token.Kind, format string, args ...interface{}) {
	if p.nextTokenIs(kind) {
		p.advance()
		return
	}
	p.fatalf(p.next, format, args...)
}

func (p *Parser) nextTokenIsAnyType() bool { return token.IsTypeKeyword(p.next.Kind) }

func (p *Parser) consumeAnyType(format string, args ...interface{}) {
	if p.nextTokenIsAnyType() {
		p.advance()
		return
	}
	p.fatalf(p.next, format, args...)
}

func (p *Parser) nextTokenIsLiteral() bool { return token.IsLiteral(p.next.Kind) }

func (p *Parser) consumeAnyLiteral(format string, args ...interface{}) {
	if p.nextTokenIsLiteral() {
		p.advance()
		return
	}
	p.fatalf(p.next, format, args...)
}

var terseAssignmentKinds = map[token.Kind]bool{
	token.PLUS_EQUALS: true, token.MINUS_EQUALS: true, token.TIMES_EQUALS: true,
	token.DIVIDE_EQUALS: true, token.MODULO_EQUALS: true, token.NOT_EQUALS: true,
	token.XOR_EQUALS: true, token.AND_EQUALS: true, token.OR_EQUALS: true,
	token.TILDE_EQUALS: true, token.LEFT_SHIFT_EQUALS: true, token.RIGHT_SHIFT_EQUALS: true,
}

func (p *Parser) nextTokenIsTerseAssignment() bool { return terseAssignmentKinds[p.next.Kind] }

func (p *Parser) consumeAnyTerseAssignment(format string, args ...interface{}) {
	if p.nextTokenIsTerseAssignment() {
		p.advance()
		return
	}
	p.fatalf(p.next, format, args...)
}

// parse is the Pratt core (original_source's static AST_Node
// *Parse(int PrecedenceLevel)).
func (p *Parser) parse(level Precedence) *astNode {
	if level == PrecEOF {
		return nil
	}
	p.advance()

	prefix := rules[p.current.Kind].prefix
	if prefix == nil {
		p.fatalf(p.current, "Prefix rule for '%s' is nil", p.current.Kind)
	}

	can := level <= Assignment
	left := prefix(p, can)

	var result *astNode
	for level <= rules[p.next.Kind].precedence {
		p.advance()

		infix := rules[p.current.Kind].infix
		if infix == nil {
			p.fatalf(p.current, "Infix rule for '%s' is nil", p.current.Kind)
		}

		node := infix(p, can)
		if result == nil {
			node.SetLeft(left)
		} else {
			node.SetLeft(result)
		}
		result = node
	}

	if result == nil {
		return left
	}
	return result
}

// BuildAST parses the whole token stream to completion, returning the
// START_NODE root (original_source's ParserBuildAST).
func (p *Parser) BuildAST() *astNode {
	root := ast.NewWithArity(ast.StartNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
	current := root

	for !p.match(token.EOF) {
		stmt := p.Statement(unused)
		next := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)

		current.SetLeft(stmt)
		current.SetRight(next)
		current = next
	}

	return root
}

// Parse runs BuildAST to completion and converts the unrecoverable
// diag.Diagnostic panic fatalf/redeclarationf raise into a returned
// error, so a caller outside this package's own tests gets the
// "report and abort, nonzero status" contract of spec.md §7 instead
// of a panic. err is p.sink.Err() — nil if nothing was ever reported,
// the first Diagnostic (wrapped via github.com/juju/errors) otherwise.
func (p *Parser) Parse() (root *astNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(diag.Diagnostic); !ok {
				panic(r)
			}
		}
		err = p.sink.Err()
	}()

	root = p.BuildAST()
	return root, nil
}

func (p *Parser) fatalf(tok token.Token, format string, args ...interface{}) {
	d := diag.Diagnostic{Kind: diag.SyntaxError, Token: tok, Message: fmt.Sprintf(format, args...)}
	p.sink.Fatal(d)
	panic(d)
}

func (p *Parser) redeclarationf(tok, original token.Token, format string, args ...interface{}) {
	d := diag.Diagnostic{
		Kind:      diag.RedeclarationError,
		Token:     tok,
		Message:   fmt.Sprintf(format, args...),
		Secondary: &original,
	}
	p.sink.Fatal(d)
	panic(d)
}
