// Package symtab is the symbol table and scope model (component E):
// an insertion-ordered per-scope mapping from identifier lexeme to
// Symbol, and the Scope stack of such tables the parser pushes and
// pops as it enters and leaves if/else blocks, plus the Shadow
// redirect it uses for struct bodies and function bodies.
//
// spec.md §9 Design Notes flag three things this package deliberately
// does differently from original_source/parser.c:
//
//   - Lookup miss is (Symbol, bool), not an in-band ERROR-kind sentinel
//     symbol (Design Note: "sentinel error symbol on lookup miss ->
//     option/result").
//   - The "shadow" mechanism — a single global pointer in parser.c that,
//     when set, overrides which table SYMBOL_TABLE() returns — is a
//     Scope method returning an explicit restore closure instead of a
//     package-level variable (Design Note: "shadowed symbol table
//     pointer -> scoped handle").
//   - Scope.tables is an unbounded slice, not parser.c's Scope.locals[10]
//     fixed array (spec.md §9 Open Question 3).
package symtab
