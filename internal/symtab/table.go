package symtab

// Table is an insertion-ordered mapping from identifier lexeme to
// Symbol (spec.md §3/§4.E). Ordering is preserved for deterministic
// downstream traversal (e.g. struct field layout) and is exposed
// through Names.
type Table struct {
	order   []string
	symbols map[string]*Symbol
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// IsIn reports whether name is declared in this table.
func (t *Table) IsIn(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

// Retrieve looks up name, keyed by the lexeme's byte content (spec.md
// §4.E), not token identity. The Design Notes (§9) replace the
// original sentinel-ERROR-symbol-on-miss with an explicit ok bool;
// callers must check it before trusting the result.
func (t *Table) Retrieve(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// AddTo inserts or updates the symbol keyed by sym.Token.Lexeme and
// returns the stored copy. Operations are idempotent within a scope
// (spec.md §4.E): re-adding the same identifier updates the stored
// symbol's State and Annotation but preserves its original declaring
// Token (and thus DeclaredOnLine).
func (t *Table) AddTo(sym Symbol) *Symbol {
	name := sym.Token.Lexeme
	if existing, ok := t.symbols[name]; ok {
		existing.State = sym.State
		declaredOnLine := existing.Annotation.DeclaredOnLine
		existing.Annotation = sym.Annotation
		existing.Annotation.DeclaredOnLine = declaredOnLine
		if sym.Params != nil {
			existing.Params = sym.Params
		}
		if sym.Fields != nil {
			existing.Fields = sym.Fields
		}
		return existing
	}

	stored := sym
	t.symbols[name] = &stored
	t.order = append(t.order, name)
	return &stored
}

// RegisterFnParam appends param to the Params list of the function
// symbol fn (spec.md §3: "an ordered list of parameter symbols
// (functions only)").
func (t *Table) RegisterFnParam(fn *Symbol, param *Symbol) {
	fn.Params = append(fn.Params, param)
}

// Names returns the declared identifiers in insertion order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Len reports how many symbols are declared in this table.
func (t *Table) Len() int { return len(t.order) }
