package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/errors"

	"github.com/rtmath/crom/internal/token"
)

// Kind classifies a Diagnostic for callers that branch on it (tests,
// the eventual driver's exit code).
type Kind int

const (
	LexError Kind = iota
	SyntaxError
	RedeclarationError
	UndeclaredError
	TypeError
	OverflowError
	ArityError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case RedeclarationError:
		return "redeclaration error"
	case UndeclaredError:
		return "undeclared identifier"
	case TypeError:
		return "type error"
	case OverflowError:
		return "overflow"
	case ArityError:
		return "arity error"
	default:
		return "error"
	}
}

// Diagnostic is one reported problem: the offending token, its Kind,
// a formatted Message, and — for diagnostics like redeclaration that
// reference an earlier declaration — a Secondary token. Line/column
// tracking rides on the Token itself, since token.Token already
// carries Line, Column, and Filename.
type Diagnostic struct {
	Kind      Kind
	Token     token.Token
	Message   string
	Secondary *token.Token
}

func (d Diagnostic) Error() string {
	loc := fmt.Sprintf("%s:%d:%d", d.Token.Filename, d.Token.Line, d.Token.Column)
	msg := fmt.Sprintf("%s: %s: %s", loc, d.Kind, d.Message)
	if d.Secondary != nil {
		msg += fmt.Sprintf(" (previously declared at %s:%d:%d)", d.Secondary.Filename, d.Secondary.Line, d.Secondary.Column)
	}
	return msg
}

// Sink accumulates diagnostics for a compile run. Report keeps going;
// Fatal additionally marks the sink halted, per spec.md §7's "report
// and abort, no recovery" model — callers check Halted after each
// pipeline stage and stop before handing bad state to the next one.
type Sink struct {
	out     io.Writer
	diags   []Diagnostic
	halted  bool
}

// NewSink returns a Sink that prints each diagnostic to w as it is
// reported.
func NewSink(w io.Writer) *Sink {
	return &Sink{out: w}
}

// Report records d without halting the pipeline.
func (s *Sink) Report(d Diagnostic) {
	s.diags = append(s.diags, d)
	if s.out != nil {
		fmt.Fprintln(s.out, d.Error())
	}
}

// Fatal records d and marks the sink halted.
func (s *Sink) Fatal(d Diagnostic) {
	s.Report(d)
	s.halted = true
}

// Halted reports whether a Fatal diagnostic has been reported.
func (s *Sink) Halted() bool { return s.halted }

// HasErrors reports whether any diagnostic has been reported.
func (s *Sink) HasErrors() bool { return len(s.diags) > 0 }

// Count returns the number of diagnostics reported so far.
func (s *Sink) Count() int { return len(s.diags) }

// Diagnostics returns all reported diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), s.diags...)
}

// Err folds every reported diagnostic into a single error, or nil if
// none were reported. The returned error is wrapped with
// github.com/juju/errors so errors.Cause can recover the first
// Diagnostic from it.
func (s *Sink) Err() error {
	if len(s.diags) == 0 {
		return nil
	}
	if len(s.diags) == 1 {
		return errors.Trace(s.diags[0])
	}

	msgs := make([]string, len(s.diags))
	for i, d := range s.diags {
		msgs[i] = d.Error()
	}
	return errors.Annotatef(s.diags[0], "%d diagnostics reported:\n%s", len(s.diags), strings.Join(msgs, "\n"))
}
