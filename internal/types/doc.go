// Package types is the type / annotation model (component C): the
// closed set of ostensible and actual types a declaration or
// expression can carry, and the Annotation value the parser attaches
// to every AST node.
//
// Ostensible vs actual: the ostensible type is what was written in
// source (the declared container); the actual type is what a later
// checker proves the expression to be. They differ when a literal is
// narrower than its declared container, e.g. `i32 x = 5;` — `5` is
// ostensibly `i32` (the declared type) but its actual type, inferred
// by the value model, is `u8` (see internal/value).
//
// Grounded on original_source/src/parser_annotation.h's
// OstensibleType/ActualType/ParserAnnotation triple.
package types
