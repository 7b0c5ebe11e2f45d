package parser

import (
	"fmt"

	"github.com/rtmath/crom/internal/diag"
	"github.com/rtmath/crom/internal/token"
)

// reportf records a non-fatal diagnostic of the given Kind and keeps
// parsing (original_source's ERROR_AT_TOKEN family reports and
// continues; only the handful of "how'd you get here" conditions
// exit). Use fatalf/redeclarationf instead when the grammar cannot
// recover from the position it's in.
func (p *Parser) reportf(kind diag.Kind, tok token.Token, format string, args ...interface{}) {
	p.sink.Report(diag.Diagnostic{Kind: kind, Token: tok, Message: fmt.Sprintf(format, args...)})
}

// arityf reports a function-call/declaration argument-count mismatch.
func (p *Parser) arityf(tok token.Token, format string, args ...interface{}) {
	p.reportf(diag.ArityError, tok, format, args...)
}

// typef reports a type mismatch that doesn't block further parsing
// (e.g. an assignment whose RHS annotation disagrees with the
// declared LHS type; the checking pass that walks the built AST is
// where most of these actually fire).
func (p *Parser) typef(tok token.Token, format string, args ...interface{}) {
	p.reportf(diag.TypeError, tok, format, args...)
}

// overflowf reports a literal whose value does not fit its inferred
// numeric domain (spec.md §4.D).
func (p *Parser) overflowf(tok token.Token, format string, args ...interface{}) {
	p.reportf(diag.OverflowError, tok, format, args...)
}
