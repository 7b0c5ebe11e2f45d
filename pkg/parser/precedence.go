package parser

import "github.com/rtmath/crom/internal/token"

// Precedence levels, matching original_source/parser.c's Precedence
// enum exactly (spec.md §4.F).
type Precedence int

const (
	PrecEOF             Precedence = -1
	NoPrecedence        Precedence = 0
	Assignment          Precedence = 1
	TernaryConditional  Precedence = 2
	Logical             Precedence = 3
	Bitwise             Precedence = 4
	Term                Precedence = 5
	Factor              Precedence = 6
	Unary               Precedence = 7
	PrefixIncDec        Precedence = 8
	ArraySubscripting   Precedence = 9
)

// parseFn is a prefix or infix parse function; canAssign mirrors
// original_source's `bool can_assign` parameter threaded through every
// ParseFn.
type parseFn func(p *Parser, canAssign bool) *astNode

// rule pairs a token kind's prefix/infix parse functions with its
// infix binding precedence (original_source's ParseRule).
type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence Precedence
}

// rules is the total rule table over every token.Kind the parser's
// Parse loop can encounter. Kinds absent from this map have no
// prefix/infix rule and NoPrecedence, matching a zero-valued
// original_source Rules[] entry.
var rules map[token.Kind]rule

func init() {
	rules = map[token.Kind]rule{
		token.I8:     {prefix: (*Parser).Type},
		token.I16:    {prefix: (*Parser).Type},
		token.I32:    {prefix: (*Parser).Type},
		token.I64:    {prefix: (*Parser).Type},
		token.U8:     {prefix: (*Parser).Type},
		token.U16:    {prefix: (*Parser).Type},
		token.U32:    {prefix: (*Parser).Type},
		token.U64:    {prefix: (*Parser).Type},
		token.F32:    {prefix: (*Parser).Type},
		token.F64:    {prefix: (*Parser).Type},
		token.CHAR:   {prefix: (*Parser).Type},
		token.STRING: {prefix: (*Parser).Type},
		token.BOOL:   {prefix: (*Parser).Type},
		token.VOID:   {prefix: (*Parser).Type},

		token.ENUM:   {prefix: (*Parser).Enum},
		token.STRUCT: {prefix: (*Parser).Struct},

		token.BREAK:    {prefix: (*Parser).Break},
		token.CONTINUE: {prefix: (*Parser).Continue},
		token.RETURN:   {prefix: (*Parser).Return},

		token.IDENTIFIER: {prefix: (*Parser).Identifier},

		token.BINARY_CONSTANT:   {prefix: (*Parser).Literal},
		token.HEX_CONSTANT:      {prefix: (*Parser).Literal},
		token.INT_CONSTANT:      {prefix: (*Parser).Literal},
		token.FLOAT_CONSTANT:    {prefix: (*Parser).Literal},
		token.ENUM_LITERAL:      {prefix: (*Parser).Literal},
		token.CHAR_CONSTANT:     {prefix: (*Parser).Literal},
		token.BOOL_LITERAL:      {prefix: (*Parser).Literal},
		token.STRING_LITERAL:    {prefix: (*Parser).Literal},
		token.TRUE:              {prefix: (*Parser).Literal},
		token.FALSE:             {prefix: (*Parser).Literal},

		token.LPAREN:   {prefix: (*Parser).Parens},
		token.LBRACKET: {infix: (*Parser).ArraySubscripting, precedence: ArraySubscripting},

		token.EQUALITY:     {infix: (*Parser).Binary, precedence: Logical},
		token.NOT_EQUALS:   {}, // terse-assignment only; never an infix rule
		token.LOGICAL_NOT:  {prefix: (*Parser).Unary, precedence: Logical},
		token.LOGICAL_AND:  {infix: (*Parser).Binary, precedence: Logical},
		token.LOGICAL_OR:   {infix: (*Parser).Binary, precedence: Logical},
		token.LESS_THAN:    {infix: (*Parser).Binary, precedence: Logical},
		token.GREATER_THAN: {infix: (*Parser).Binary, precedence: Logical},
		token.LESS_EQUAL:   {infix: (*Parser).Binary, precedence: Logical},
		token.GREATER_EQUAL: {infix: (*Parser).Binary, precedence: Logical},

		token.PLUS:     {infix: (*Parser).Binary, precedence: Term},
		token.MINUS:    {prefix: (*Parser).Unary, infix: (*Parser).Binary, precedence: Term},
		token.ASTERISK: {infix: (*Parser).Binary, precedence: Factor},
		token.DIVIDE:   {infix: (*Parser).Binary, precedence: Factor},
		token.MODULO:   {infix: (*Parser).Binary, precedence: Factor},

		token.PLUS_PLUS:   {prefix: (*Parser).Unary, precedence: PrefixIncDec},
		token.MINUS_MINUS: {prefix: (*Parser).Unary, precedence: PrefixIncDec},

		token.BITWISE_NOT:   {prefix: (*Parser).Unary, precedence: Bitwise},
		token.BITWISE_AND:   {infix: (*Parser).Binary, precedence: Bitwise},
		token.BITWISE_XOR:   {infix: (*Parser).Binary, precedence: Bitwise},
		token.BITWISE_OR:    {infix: (*Parser).Binary, precedence: Bitwise},
		token.LEFT_SHIFT:    {infix: (*Parser).Binary, precedence: Bitwise},
		token.RIGHT_SHIFT:   {infix: (*Parser).Binary, precedence: Bitwise},

		token.EOF: {precedence: PrecEOF},
	}
}
