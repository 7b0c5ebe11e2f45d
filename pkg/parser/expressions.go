package parser

import (
	"strconv"

	"github.com/rtmath/crom/internal/ast"
	"github.com/rtmath/crom/internal/symtab"
	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/types"
	"github.com/rtmath/crom/internal/value"
)

// annotationForLiteral infers the Annotation a literal token carries,
// applying the same smallest-containing-width rule value.FromToken
// uses for the runtime Value (spec.md §4.D). Overflowing literals
// still get an Annotation (from value.Overflow's caller contract it is
// types.None()); callers needing the overflow diagnostic itself go
// through value.FromToken directly.
func annotationForLiteral(tok token.Token) types.Annotation {
	v, _ := value.FromToken(tok)
	return v.Annotation()
}

// Type parses a type keyword, an optional array suffix, and the
// identifier it declares, registering the declaration and handing off
// to Identifier (original_source/parser.c's Type).
func (p *Parser) Type(_ bool) *astNode {
	typeToken := p.current
	isArray := false
	arraySize := 0

	if p.match(token.LBRACKET) {
		if p.match(token.INT_CONSTANT) {
			n, err := strconv.Atoi(p.current.Lexeme)
			if err != nil {
				p.fatalf(p.current, "Type(): invalid array size '%s'", p.current.Lexeme)
			}
			arraySize = n
		}
		p.consume(token.RBRACKET, "Type(): Expected ']' after '%s', got '%s' instead.", p.current.Kind, p.next.Kind)
		isArray = true
	}

	if p.nextTokenIs(token.IDENTIFIER) {
		if existing, ok := p.scope.Current().Retrieve(p.next.Lexeme); ok {
			p.redeclarationf(p.next, existing.Token,
				"Type(): Redeclaration of identifier '%s', previously declared on line %d",
				p.next.Lexeme, existing.Annotation.DeclaredOnLine)
		}

		a := types.FromTypeKeyword(typeToken.Kind, p.next.Line)
		if isArray {
			a = types.Array(a, arraySize)
		}
		p.scope.Current().AddTo(symtab.NewSymbol(p.next, a, symtab.Declared))
	}

	suffix := ""
	if isArray {
		suffix = "[]"
	}
	p.consume(token.IDENTIFIER, "Type(): Expected IDENTIFIER after Type '%s%s', got '%s' instead.",
		typeToken.Kind, suffix, p.next.Kind)

	return p.Identifier(canAssign)
}

// Identifier parses a bare identifier occurrence: a function
// declaration or call, an array subscript, a pre/postfix increment or
// decrement, a plain assignment, a terse assignment, or a value
// reference (original_source/parser.c's Identifier).
func (p *Parser) Identifier(can bool) *astNode {
	table := p.scope.Current()
	symbol, inTable := table.Retrieve(p.current.Lexeme)
	identifierToken := p.current
	var arrayIndex *astNode

	if p.match(token.LPAREN) {
		if p.nextTokenIsAnyType() || (p.nextTokenIs(token.RPAREN) && p.tokenAfterNextIs(token.COLON_SEPARATOR)) {
			if inTable && symbol.State != symtab.Declared {
				p.redeclarationf(identifierToken, symbol.Token,
					"Identifier(): Function '%s' has been redeclared, original declaration on line %d",
					identifierToken.Lexeme, symbol.Annotation.DeclaredOnLine)
			}

			if !inTable {
				table.AddTo(symtab.NewSymbol(identifierToken,
					types.Function(types.FromTypeKeyword(token.VOID, identifierToken.Line)),
					symtab.Uninitialized))
			}
			symbol, _ = table.Retrieve(identifierToken.Lexeme)

			return p.FunctionDeclaration(symbol)
		}

		if !inTable {
			p.fatalf(identifierToken, "Identifier(): Undeclared function '%s'", identifierToken.Lexeme)
		} else if symbol.State != symtab.Defined {
			p.fatalf(identifierToken, "Identifier(): Can't call an undefined function '%s'", identifierToken.Lexeme)
		}

		return p.FunctionCall(identifierToken)
	}

	if !inTable {
		outer, ok := p.scope.ExistsInOuterScope(identifierToken.Lexeme)
		if !ok {
			p.fatalf(identifierToken, "Identifier(): Line %d: Undeclared identifier '%s'",
				identifierToken.Line, identifierToken.Lexeme)
		}
		symbol = outer
		inTable = true
	}

	if symbol.State == symtab.None && can {
		p.redeclarationf(identifierToken, symbol.Token,
			"Identifier(): Identifier '%s' has been redeclared. First declared on line %d",
			identifierToken.Lexeme, symbol.Annotation.DeclaredOnLine)
	}

	if p.match(token.LBRACKET) {
		arrayIndex = p.ArraySubscripting(unused)
	}

	if p.match(token.PLUS_PLUS) {
		if symbol.State != symtab.Defined {
			p.fatalf(identifierToken, "Identifier(): Cannot increment undefined variable '%s'", identifierToken.Lexeme)
		}
		return ast.New(ast.PostfixIncrementNode, identifierToken, symbol.Annotation, nil, nil, nil)
	}

	if p.match(token.MINUS_MINUS) {
		if symbol.State != symtab.Defined {
			p.fatalf(identifierToken, "Identifier(): Cannot decrement undefined variable '%s'", identifierToken.Lexeme)
		}
		return ast.New(ast.PostfixDecrementNode, identifierToken, symbol.Annotation, nil, nil, nil)
	}

	if p.match(token.EQUALS) {
		if !can {
			p.fatalf(identifierToken, "Identifier(): Cannot assign to identifier '%s'", identifierToken.Lexeme)
		}

		stored := table.AddTo(symtab.NewSymbol(identifierToken, symbol.Annotation, symtab.Defined))
		value := p.Expression(unused)
		return ast.New(ast.AssignmentNode, stored.Token, stored.Annotation, value, arrayIndex, nil)
	}

	if p.nextTokenIsTerseAssignment() {
		p.consumeAnyTerseAssignment("Identifier() Terse Assignment: How did this error message appear?")
		if symbol.State != symtab.Defined {
			p.fatalf(identifierToken, "Identifier(): Cannot perform a terse assignment on undefined variable '%s'", identifierToken.Lexeme)
		}

		terse := p.TerseAssignment(unused)
		terse.SetLeft(ast.New(ast.IdentifierNode, symbol.Token, symbol.Annotation, nil, nil, nil))
		return terse
	}

	// Re-retrieve to pick up the current State/Annotation, but keep
	// identifierToken so diagnostics report the use site's line.
	s, _ := table.Retrieve(identifierToken.Lexeme)
	kind := ast.IdentifierNode
	if s.State == symtab.Declared {
		kind = ast.DeclarationNode
	}
	return ast.New(kind, identifierToken, s.Annotation, nil, arrayIndex, nil)
}

// Unary parses a prefix operator: ++, --, !, unary -, or ~
// (original_source/parser.c's Unary). Unlike the original, ~ builds a
// UNARY_OP_NODE rather than falling through to the "unknown operator"
// branch — its rule table entry already names Unary as its prefix
// function, so leaving it out of the switch was a latent original gap.
func (p *Parser) Unary(_ bool) *astNode {
	operatorToken := p.current
	operand := p.parse(Unary)

	switch operatorToken.Kind {
	case token.PLUS_PLUS:
		return ast.New(ast.PrefixIncrementNode, operatorToken, types.None(), operand, nil, nil)
	case token.MINUS_MINUS:
		return ast.New(ast.PrefixDecrementNode, operatorToken, types.None(), operand, nil, nil)
	case token.LOGICAL_NOT, token.MINUS, token.BITWISE_NOT:
		return ast.New(ast.UnaryOpNode, operatorToken, types.None(), operand, nil, nil)
	default:
		p.fatalf(operatorToken, "Unary(): Unknown unary operator '%s'", operatorToken.Kind)
		return nil
	}
}

// Binary parses the right-hand side of an infix operator at one
// precedence tighter than the operator's own level, giving left
// associativity (original_source/parser.c's Binary).
func (p *Parser) Binary(_ bool) *astNode {
	operatorToken := p.current
	precedence := rules[p.current.Kind].precedence
	rhs := p.parse(precedence + 1)

	switch operatorToken.Kind {
	case token.PLUS, token.MINUS, token.ASTERISK, token.DIVIDE, token.MODULO,
		token.EQUALITY, token.LOGICAL_AND, token.LOGICAL_OR,
		token.LESS_THAN, token.GREATER_THAN, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.BITWISE_XOR, token.BITWISE_NOT, token.BITWISE_AND, token.BITWISE_OR,
		token.LEFT_SHIFT, token.RIGHT_SHIFT:
		return ast.New(ast.BinaryOpNode, operatorToken, types.None(), nil, nil, rhs)
	default:
		p.fatalf(operatorToken, "Binary(): Unknown operator '%s'", operatorToken.Kind)
		return nil
	}
}

// TerseAssignment parses the right-hand side of a += / -= / ... /
// != operator (original_source/parser.c's TerseAssignment; NOT_EQUALS
// here is this terse-assignment operator, never a standalone
// inequality test).
func (p *Parser) TerseAssignment(_ bool) *astNode {
	operatorToken := p.current
	precedence := rules[p.current.Kind].precedence
	rhs := p.parse(precedence + 1)

	if !terseAssignmentKinds[operatorToken.Kind] {
		p.fatalf(operatorToken, "TerseAssignment(): Unknown operator '%s'", operatorToken.Kind)
		return nil
	}

	return ast.New(ast.TerseAssignmentNode, operatorToken, types.None(), nil, nil, rhs)
}

// Parens parses a parenthesized expression, treating a trailing '?' as
// the start of a ternary conditional (original_source/parser.c's
// Parens).
func (p *Parser) Parens(_ bool) *astNode {
	result := p.Expression(unused)
	p.consume(token.RPAREN, "Parens(): Missing ')' after expression")

	if p.nextTokenIs(token.QUESTIONMARK) {
		return p.TernaryIfStmt(result)
	}
	return result
}

// ArraySubscripting parses the `[ index ]` suffix of an array
// reference, where index is either an identifier defined in the
// current table or an integer literal (original_source/parser.c's
// ArraySubscripting).
func (p *Parser) ArraySubscripting(_ bool) *astNode {
	var result *astNode

	if p.match(token.IDENTIFIER) {
		symbol, inTable := p.scope.Current().Retrieve(p.current.Lexeme)
		if !inTable {
			p.fatalf(p.current, "ArraySubscripting(): Can't access array with undeclared identifier '%s'", p.current.Lexeme)
		}
		if symbol.State != symtab.Defined {
			p.fatalf(p.current, "ArraySubscripting(): Can't access array with uninitialized identifier '%s'", p.current.Lexeme)
		}
		result = ast.New(ast.ArraySubscriptNode, symbol.Token, symbol.Annotation, nil, nil, nil)
	} else if p.match(token.INT_CONSTANT) {
		result = ast.New(ast.ArraySubscriptNode, p.current, annotationForLiteral(p.current), nil, nil, nil)
	}

	p.consume(token.RBRACKET, "ArraySubscripting(): Where's the ']'?")
	return result
}

// EnumIdentifier parses one enum member reference, optionally assigned
// an explicit value (original_source/parser.c's EnumIdentifier).
func (p *Parser) EnumIdentifier(can bool) *astNode {
	table := p.scope.Current()
	symbol, inTable := table.Retrieve(p.current.Lexeme)
	identifierToken := p.current

	if !inTable {
		p.fatalf(identifierToken, "EnumIdentifier(): Line %d: Undeclared identifier '%s'",
			identifierToken.Line, identifierToken.Lexeme)
	}

	if symbol.State == symtab.None && can {
		p.redeclarationf(identifierToken, symbol.Token,
			"EnumIdentifier(): Identifier '%s' has been redeclared. First declared on line %d",
			identifierToken.Lexeme, symbol.Annotation.DeclaredOnLine)
	}

	if p.match(token.EQUALS) {
		if !can {
			p.fatalf(identifierToken, "EnumIdentifier(): Cannot assign to identifier '%s'", identifierToken.Lexeme)
		}
		stored := table.AddTo(symtab.NewSymbol(identifierToken, symbol.Annotation, symtab.Defined))
		value := p.Expression(unused)
		return ast.New(ast.AssignmentNode, stored.Token, stored.Annotation, value, nil, nil)
	}

	return ast.New(ast.EnumIdentifierNode, identifierToken, types.FromTypeKeyword(token.ENUM, identifierToken.Line), nil, nil, nil)
}

// enumBlock parses the `{ A, B, C }` body of an enum declaration
// (original_source/parser.c's EnumBlock).
func (p *Parser) enumBlock() *astNode {
	table := p.scope.Current()
	n := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
	current := n

	p.consume(token.LBRACE, "EnumBlock(): Expected '{' after ENUM declaration, got '%s'", p.current.Kind)

	for !p.nextTokenIs(token.RBRACE) && !p.nextTokenIs(token.EOF) {
		if existing, ok := table.Retrieve(p.next.Lexeme); ok {
			p.fatalf(p.next, "EnumBlock(): Enum identifier '%s' already exists, declared on line %d",
				p.next.Lexeme, existing.Annotation.DeclaredOnLine)
		}

		p.consume(token.IDENTIFIER, "EnumBlock(): Expected IDENTIFIER after Type '%s', got '%s' instead.", p.current.Kind, p.next.Kind)
		table.AddTo(symtab.NewSymbol(p.current, types.FromTypeKeyword(token.ENUM, p.current.Line), symtab.Defined))

		next := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
		current.SetLeft(p.EnumIdentifier(canAssign))
		current.SetRight(next)
		current = next

		p.match(token.COMMA)
	}

	p.consume(token.RBRACE, "EnumBlock(): Expected '}' after ENUM block, got '%s'", p.current.Kind)
	return n
}

// Enum parses a full `enum Name { ... }` declaration
// (original_source/parser.c's Enum).
func (p *Parser) Enum(_ bool) *astNode {
	p.consume(token.IDENTIFIER, "Enum(): Expected IDENTIFIER after Type '%s', got '%s' instead.", p.next.Kind, p.next.Kind)
	p.scope.Current().AddTo(symtab.NewSymbol(p.current, types.FromTypeKeyword(token.ENUM, p.current.Line), symtab.Declared))

	enumName := p.Identifier(false)
	enumName.SetLeft(p.enumBlock())
	return enumName
}

// Struct parses a full `struct Name { ... }` declaration, shadowing
// the current symbol table with the struct's own field table while
// its body is parsed (original_source/parser.c's Struct).
func (p *Parser) Struct(_ bool) *astNode {
	p.consume(token.IDENTIFIER, "Struct(): Expected IDENTIFIER after Type '%s', got '%s' instead.", p.current.Kind, p.next.Kind)
	identifierToken := p.current

	if existing, ok := p.scope.Current().Retrieve(identifierToken.Lexeme); ok {
		p.fatalf(identifierToken, "Struct(): Struct '%s' is already in symbol table, declared on line %d",
			identifierToken.Lexeme, existing.Annotation.DeclaredOnLine)
	}

	identifierSymbol := p.scope.Current().AddTo(symtab.NewSymbol(identifierToken, types.FromTypeKeyword(token.STRUCT, identifierToken.Line), symtab.Declared))
	identifierSymbol.Fields = symtab.NewTable()

	restore := p.scope.Shadow(identifierSymbol.Fields)

	p.consume(token.LBRACE, "Struct(): Expected '{' after STRUCT declaration, got '%s' instead", p.next.Kind)

	n := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
	current := n
	hasEmptyBody := true

	for !p.nextTokenIs(token.RBRACE) && !p.nextTokenIs(token.EOF) {
		hasEmptyBody = false
		next := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
		current.SetLeft(p.Statement(unused))
		current.SetRight(next)
		current = next
	}

	p.consume(token.RBRACE, "Struct(): Expected '}' after STRUCT block, got '%s' instead", p.next.Kind)
	restore()

	if hasEmptyBody {
		p.fatalf(identifierSymbol.Token, "Struct(): Struct '%s' has empty body", identifierSymbol.Token.Lexeme)
	}

	stored := p.scope.Current().AddTo(symtab.NewSymbol(identifierToken, types.FromTypeKeyword(token.STRUCT, identifierToken.Line), symtab.Defined))
	return ast.New(ast.IdentifierNode, stored.Token, stored.Annotation, n, nil, nil)
}

// FunctionParams parses the comma-separated parameter list of a
// function declaration, registering each parameter both in fnParams
// (the function's own scope, used while parsing its body) and on the
// function symbol's ordered Params list (original_source/parser.c's
// FunctionParams).
func (p *Parser) FunctionParams(fnParams *symtab.Table, fn *symtab.Symbol) *astNode {
	params := ast.New(ast.FunctionParamNode, token.Token{}, types.None(), nil, nil, nil)
	current := params

	for !p.nextTokenIs(token.RPAREN) && !p.nextTokenIs(token.EOF) {
		p.consumeAnyType("FunctionParams(): Expected a type, got '%s' instead", p.next.Kind)
		typeToken := p.current

		p.consume(token.IDENTIFIER, "FunctionParams(): Expected identifier after '(', got '%s' instead", p.next.Kind)
		identifierToken := p.current

		if existing, ok := fnParams.Retrieve(identifierToken.Lexeme); ok && existing.State != symtab.Declared {
			p.fatalf(identifierToken, "FunctionParams(): Duplicate parameter name '%s'", identifierToken.Lexeme)
		}

		stored := fnParams.AddTo(symtab.NewSymbol(identifierToken, types.FromTypeKeyword(typeToken.Kind, identifierToken.Line), symtab.FnParam))
		p.scope.Current().RegisterFnParam(fn, stored)

		current.Token = stored.Token
		current.Annotation = stored.Annotation

		if p.match(token.COMMA) || !p.nextTokenIs(token.RPAREN) {
			next := ast.New(ast.FunctionParamNode, token.Token{}, types.None(), nil, nil, nil)
			current.SetLeft(next)
			current = next
		}
	}

	return params
}

// FunctionReturnType parses the `) :: type` tail introducing a
// function's return type (original_source/parser.c's
// FunctionReturnType).
func (p *Parser) FunctionReturnType() *astNode {
	p.consume(token.RPAREN, "FunctionReturnType(): ')' required after function declaration")
	p.consume(token.COLON_SEPARATOR, "FunctionReturnType(): '::' required after function declaration")
	p.consumeAnyType("FunctionReturnType(): Expected a type after '::'")

	returnToken := p.current
	return ast.New(ast.FunctionReturnTypeNode, returnToken, types.FromTypeKeyword(returnToken.Kind, returnToken.Line), nil, nil, nil)
}

// FunctionBody parses a function's `{ ... }` body under the function's
// own parameter scope, or returns nil for a bodiless forward
// declaration (original_source/parser.c's FunctionBody).
func (p *Parser) FunctionBody(fnParams *symtab.Table) *astNode {
	if p.nextTokenIs(token.SEMICOLON) {
		return nil
	}

	p.consume(token.LBRACE, "FunctionBody(): Expected '{' to begin function body, got '%s' instead", p.next.Kind)

	body := ast.NewWithArity(ast.FunctionBodyNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
	current := body

	restore := p.scope.Shadow(fnParams)
	for !p.nextTokenIs(token.RBRACE) && !p.nextTokenIs(token.EOF) {
		next := ast.NewWithArity(ast.ChainNode, token.Token{}, types.None(), ast.BinaryArity, nil, nil, nil)
		current.SetLeft(p.Statement(unused))
		current.SetRight(next)
		current = next
	}
	restore()

	p.consume(token.RBRACE, "FunctionBody(): Expected '}' after function body")
	return body
}

// FunctionDeclaration parses a full function header plus optional body
// and records the resulting Declared/Defined symbol
// (original_source/parser.c's FunctionDeclaration).
func (p *Parser) FunctionDeclaration(symbol *symtab.Symbol) *astNode {
	if symbol.Fields == nil {
		symbol.Fields = symtab.NewTable()
	}
	params := p.FunctionParams(symbol.Fields, symbol)
	returnType := p.FunctionReturnType()
	body := p.FunctionBody(symbol.Fields)

	if symbol.State == symtab.Declared && body == nil {
		p.fatalf(symbol.Token, "FunctionDeclaration(): Double declaration of function '%s' (declared on line %d)",
			symbol.Token.Lexeme, symbol.Annotation.DeclaredOnLine)
	}

	current, _ := p.scope.Current().Retrieve(symbol.Token.Lexeme)
	ann := current.Annotation
	if current.State != symtab.Declared {
		ann = types.Function(returnType.Annotation)
	}
	state := symtab.Defined
	if body == nil {
		state = symtab.Declared
	}

	updated := p.scope.Current().AddTo(symtab.NewSymbol(current.Token, ann, state))

	kind := ast.FunctionNode
	if body == nil {
		kind = ast.DeclarationNode
	}
	return ast.New(kind, updated.Token, updated.Annotation, returnType, params, body)
}

// FunctionCall parses the comma-separated argument list of a call
// expression, where each argument is an identifier (itself possibly a
// nested call), or a literal (original_source/parser.c's
// FunctionCall).
func (p *Parser) FunctionCall(functionName token.Token) *astNode {
	var args *astNode
	var current *astNode

	for !p.nextTokenIs(token.RPAREN) && !p.nextTokenIs(token.EOF) {
		if args == nil {
			args = ast.New(ast.FunctionArgumentNode, token.Token{}, types.None(), nil, nil, nil)
			current = args
		}

		switch {
		case p.nextTokenIs(token.IDENTIFIER):
			p.consume(token.IDENTIFIER, "FunctionCall(): Expected identifier")
			identifier, _ := p.scope.Current().Retrieve(p.current.Lexeme)

			if p.match(token.LPAREN) {
				current.SetLeft(p.FunctionCall(identifier.Token))
			} else {
				current.SetLeft(ast.New(ast.FunctionArgumentNode, identifier.Token, identifier.Annotation, nil, nil, nil))
			}

		case p.nextTokenIsLiteral():
			p.consumeAnyLiteral("FunctionCall(): Expected literal")
			literal := p.current
			current.SetLeft(ast.New(ast.FunctionArgumentNode, literal, annotationForLiteral(literal), nil, nil, nil))
		}

		if p.nextTokenIs(token.COMMA) {
			p.consume(token.COMMA, "")
			if p.nextTokenIs(token.RPAREN) {
				break
			}

			next := ast.New(ast.FunctionArgumentNode, token.Token{}, types.None(), nil, nil, nil)
			current.SetRight(next)
			current = next
		}
	}

	p.consume(token.RPAREN, "FunctionCall(): Expected ')'")
	return ast.New(ast.FunctionCallNode, functionName, types.None(), nil, args, nil)
}

// Literal parses a single literal token into a LITERAL_NODE
// (original_source/parser.c's Literal).
func (p *Parser) Literal(_ bool) *astNode {
	v, err := value.FromToken(p.current)
	if err != nil {
		p.overflowf(p.current, "Literal(): %s", err)
	}
	return ast.New(ast.LiteralNode, p.current, v.Annotation(), nil, nil, nil)
}
