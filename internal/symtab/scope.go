package symtab

// Scope is an ordered stack of symbol tables (spec.md §3). Depth
// starts at 0 with the module-global table. Unlike
// original_source/parser.c's `SymbolTable *locals[10]`, the stack here
// is an unbounded slice — spec.md §9 Open Question 3 notes the
// original's fixed size is an implementation limit, not a language
// rule.
type Scope struct {
	tables  []*Table
	shadow  *Table
}

// NewScope returns a Scope with the module-global table already
// pushed at depth 0.
func NewScope() *Scope {
	return &Scope{tables: []*Table{NewTable()}}
}

// Depth is the current scope depth; 0 is the module-global scope.
func (s *Scope) Depth() int { return len(s.tables) - 1 }

// Begin pushes an empty table, entering a new nested scope. The parser
// pushes one for each branch of an if statement; while/for bodies do
// not push a table, and struct and function bodies use Shadow instead.
func (s *Scope) Begin() {
	s.tables = append(s.tables, NewTable())
}

// End pops and releases the current table. Panics if called at depth
// 0 — original_source/parser.c's EndScope treats this as a fatal
// compiler bug ("How'd you end scope at depth 0?"), not a recoverable
// condition, so this does too.
func (s *Scope) End() {
	if s.Depth() == 0 {
		panic("symtab: End called at scope depth 0")
	}
	s.tables = s.tables[:len(s.tables)-1]
}

// Current returns the table that unqualified declarations/lookups
// should land in: the shadow table if one is active, otherwise the
// table at the top of the stack.
func (s *Scope) Current() *Table {
	if s.shadow != nil {
		return s.shadow
	}
	return s.tables[len(s.tables)-1]
}

// Shadow temporarily redirects Current() to st — used while parsing a
// struct body or function body so that declarations inside it land in
// the struct's field table / function's parameter table instead of
// the ambient scope (spec.md §4.E "Nested tables").
//
// This replaces original_source/parser.c's single global
// shadowed_symbol_table with an explicit scoped handle (spec.md §9
// Design Notes): the caller must invoke the returned restore function
// (typically via defer) to leave the shadow, and nested Shadow calls
// restore correctly because each call captures the previously-active
// shadow, not always nil.
func (s *Scope) Shadow(st *Table) (restore func()) {
	prior := s.shadow
	s.shadow = st
	return func() { s.shadow = prior }
}

// ExistsInOuterScope searches scopes depth-1 down to 0 — the ambient
// scopes enclosing the current one, excluding the current scope and
// any active shadow (spec.md §4.F: "Outer-scope lookup triggers only
// when the current scope misses").
func (s *Scope) ExistsInOuterScope(name string) (*Symbol, bool) {
	for i := len(s.tables) - 2; i >= 0; i-- {
		if sym, ok := s.tables[i].Retrieve(name); ok {
			return sym, ok
		}
	}
	return nil, false
}
