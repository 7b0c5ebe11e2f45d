// Package value is the value model (component D): the typed runtime
// representation of literals, with overflow-aware construction and
// the arithmetic/comparison/logical primitives defined over them.
//
// Values are a tagged union (spec.md §3): integer (i64), unsigned
// (u64), float (f64), char, string, bool, array-of-value, none, and
// overflow. Every Value carries its own types.Annotation. The
// constructors (NewInt, NewUint, NewFloat, FromToken) always pair a tag
// with a matching Annotation; the variant structs' fields are exported,
// so a composite literal such as Bool{V: true} carries whatever
// Annotation it is given (here the zero value).
//
// Grounded on original_source/src/value.c (NewValue/NewIntValue/
// NewUintValue/NewFloatValue's smallest-containing-type inference,
// AddValues/SubValues/.../LogicalAND's type-switch dispatch) and on
// the Value-interface idiom of the type-object-based variant named by
// spec.md §9 Open Question 2.
package value
