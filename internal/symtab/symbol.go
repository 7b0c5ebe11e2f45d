package symtab

import (
	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/types"
)

// DeclState is a symbol's position in the declaration state machine
// (spec.md §4.F):
//
//	(absent) --declare--> Declared --define--> Defined
//	                         |                    ^
//	                         +----- FnParam ------+   (at parameter-binding time)
//	                         |
//	                         +----- Uninitialized       (forward-declared, not yet seen)
//
// Transitions backwards (Defined -> Declared) are forbidden; callers
// enforce this, Symbol itself only stores the current state.
type DeclState int

const (
	None DeclState = iota
	Declared
	Defined
	Uninitialized
	FnParam
)

func (s DeclState) String() string {
	switch s {
	case None:
		return "NONE"
	case Declared:
		return "DECLARED"
	case Defined:
		return "DEFINED"
	case Uninitialized:
		return "UNINITIALIZED"
	case FnParam:
		return "FN_PARAM"
	default:
		return "UNKNOWN"
	}
}

// Symbol is one declared identifier: its declaring token, type
// annotation, declaration state, ordered parameter list (functions
// only), and nested field table (structs only) — spec.md §3.
//
// Invariant: Annotation.DeclaredOnLine equals the Line of Token for
// the symbol's entire lifetime, even across re-adds that update State
// or Annotation (spec.md §4.E: "idempotent within a scope").
type Symbol struct {
	Token      token.Token
	Annotation types.Annotation
	State      DeclState

	Params []*Symbol // ordered, functions only
	Fields *Table    // nested field table, structs only
}

// NewSymbol builds a Symbol in the given state, stamping
// Annotation.DeclaredOnLine from tok (original_source's NewSymbol).
func NewSymbol(tok token.Token, annotation types.Annotation, state DeclState) Symbol {
	annotation.DeclaredOnLine = tok.Line
	return Symbol{Token: tok, Annotation: annotation, State: state}
}
