// Package lexer streams source bytes into internal/token.Token values
// (component B): it tracks line numbers, skips whitespace and "//"
// comments, and classifies identifiers, keywords, and the literal
// forms (decimal/hex/binary integer, float, char, string, bool).
//
// Grounded on original_source/lexer.c's ScanToken state machine (a
// start/end byte-pointer pair advanced by Advance/Peek/PeekNext/Match)
// translated into Go byte-index form; see doc comments on individual
// scan functions for the specific original_source rule each follows.
package lexer
