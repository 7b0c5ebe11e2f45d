// Package ast is the AST node model (component G): a single uniform
// node shape — a token, an arity, a closed Kind enum, a type
// annotation, and exactly three child slots (Left, Middle, Right) —
// rather than one Go type per node kind.
//
// spec.md §9 flags this uniform shape as something a later pass would
// want to replace with a sum type per node kind; this package keeps it
// deliberately, because print_ast (this package's Print) and the
// parser's statement/expression builders are the only two consumers
// and both want exactly this shape: a single recursive print function
// with no type switch, and a parser that can splice any previously
// built node into any of three slots without per-kind constructors.
//
// Grounded on original_source/ast.h's AST_Node/NodeType/Arity and
// ast.c's NewNode/NewNodeWithToken/PrintASTRecurse.
package ast
