// Package token is the token model (component A): a closed Kind enum
// and the Token value the lexer produces and the parser consumes one
// lookahead slot at a time.
package token
