// Package clog is the ambient logging wrapper shared by the lexer,
// parser, and symbol table: a single "crom" root logger built on
// github.com/juju/loggo, configured once per process and retrieved by
// name from each package. Lexer code logs at TRACE when it skips a line
// comment and when it classifies a hex constant, a binary constant, or
// a keyword. The parser holds a "crom.parser" logger but emits no log
// calls.
package clog
