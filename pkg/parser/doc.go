// Package parser implements the Pratt (precedence-climbing) parser
// (component F): it drives the lexer one token at a time, three-token
// lookahead deep (current/next/afterNext), builds the AST, pushes and
// pops scopes as it enters and leaves blocks/struct bodies/function
// bodies, and enforces the declaration-state rules (redeclaration,
// use-before-definition) as it goes.
//
// Grounded throughout on original_source/parser.c: a token-kind-keyed
// rule table of prefix/infix functions and a precedence, matching
// parser.c's `Rules[]`/`ParseFn` (spec.md §9 Design Note: "the former
// remains valuable because the precedence column is data the
// algorithm reads directly" — kept as a table rather than converted
// to an exhaustive switch). Per-function grounding is noted on each
// parse method.
package parser
