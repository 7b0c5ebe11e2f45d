package types

import (
	"fmt"

	"github.com/rtmath/crom/internal/token"
)

// Kind is the closed set of ostensible/actual types a declaration or
// value can carry. The same set serves both roles (spec.md §3): an
// Annotation's Ostensible and Actual fields are both Kind values, and
// they may legitimately differ during inference.
type Kind int

// Kind constants, mirroring original_source's ACT_*/OST_* pair (the C
// source aliased OstensibleType values onto ActualType's numeric
// values "to cast OstensibleType <-> ActualType relatively safely" —
// Go's type system makes that unnecessary, so there is exactly one
// enum here instead of two).
const (
	Unknown Kind = iota
	Int
	Float
	Bool
	Char
	String
	Void
	Enum
	Struct
)

var kindNames = map[Kind]string{
	Unknown: "unknown", Int: "int", Float: "float", Bool: "bool",
	Char: "char", String: "string", Void: "void", Enum: "enum", Struct: "struct",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Annotation describes the declared/ostensible and actual types of an
// AST node or symbol: bit-width, signedness, array-ness, and
// function-ness, plus the source line it was declared on for
// diagnostics (spec.md §3).
//
// Invariant: for integer Kinds, BitWidth > 0; for non-numeric Kinds,
// BitWidth == 0.
type Annotation struct {
	Ostensible Kind
	Actual     Kind

	IsSigned bool
	BitWidth int // one of 8, 16, 32, 64, or 0 for non-numeric kinds

	IsArray   bool
	ArraySize int

	IsFunction bool

	DeclaredOnLine int
}

// None is the zero-value annotation for nodes that carry no type
// information of their own (e.g. a CHAIN_NODE terminator).
func None() Annotation {
	return Annotation{Ostensible: Unknown, Actual: Unknown}
}

// FromTypeKeyword builds the Annotation implied by a built-in type
// keyword token (i8, u32, bool, char, string, void, struct, ...),
// the Go analog of original_source's AnnotateType.
func FromTypeKeyword(kind token.Kind, declaredOnLine int) Annotation {
	a := Annotation{DeclaredOnLine: declaredOnLine}

	switch kind {
	case token.I8:
		a.Ostensible, a.Actual, a.IsSigned, a.BitWidth = Int, Int, true, 8
	case token.I16:
		a.Ostensible, a.Actual, a.IsSigned, a.BitWidth = Int, Int, true, 16
	case token.I32:
		a.Ostensible, a.Actual, a.IsSigned, a.BitWidth = Int, Int, true, 32
	case token.I64:
		a.Ostensible, a.Actual, a.IsSigned, a.BitWidth = Int, Int, true, 64
	case token.U8:
		a.Ostensible, a.Actual, a.BitWidth = Int, Int, 8
	case token.U16:
		a.Ostensible, a.Actual, a.BitWidth = Int, Int, 16
	case token.U32:
		a.Ostensible, a.Actual, a.BitWidth = Int, Int, 32
	case token.U64:
		a.Ostensible, a.Actual, a.BitWidth = Int, Int, 64
	case token.F32:
		a.Ostensible, a.Actual, a.IsSigned, a.BitWidth = Float, Float, true, 32
	case token.F64:
		a.Ostensible, a.Actual, a.IsSigned, a.BitWidth = Float, Float, true, 64
	case token.BOOL:
		a.Ostensible, a.Actual = Bool, Bool
	case token.CHAR:
		a.Ostensible, a.Actual = Char, Char
	case token.STRING:
		a.Ostensible, a.Actual = String, String
	case token.VOID:
		a.Ostensible, a.Actual = Void, Void
	case token.ENUM:
		a.Ostensible, a.Actual = Enum, Enum
	case token.STRUCT:
		a.Ostensible, a.Actual = Struct, Struct
	default:
		a.Ostensible, a.Actual = Unknown, Unknown
	}

	return a
}

// Array returns a copy of a with the array flags set, as produced
// when a type declaration is followed by `[ N ]` (spec.md §4.F).
func Array(a Annotation, size int) Annotation {
	a.IsArray = true
	a.ArraySize = size
	return a
}

// Function builds the annotation for a function symbol with the given
// ostensible/actual return type, the Go analog of
// original_source's FunctionAnnotation.
func Function(returnType Annotation) Annotation {
	returnType.IsFunction = true
	return returnType
}

// IsNumeric reports whether k is Int or Float.
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// Equal reports whether two annotations describe the same type,
// ignoring DeclaredOnLine (which is informational, not structural).
func (a Annotation) Equal(other Annotation) bool {
	return a.Actual == other.Actual &&
		a.IsSigned == other.IsSigned &&
		a.BitWidth == other.BitWidth &&
		a.IsArray == other.IsArray &&
		a.ArraySize == other.ArraySize &&
		a.IsFunction == other.IsFunction
}

// String renders a short human-readable form, e.g. "i32", "[10]u8", "fn void".
func (a Annotation) String() string {
	prefix := ""
	if a.IsArray {
		prefix = fmt.Sprintf("[%d]", a.ArraySize)
	}
	if a.IsFunction {
		return fmt.Sprintf("fn %s%s", prefix, a.actualLabel())
	}
	return prefix + a.actualLabel()
}

func (a Annotation) actualLabel() string {
	if a.Actual.IsNumeric() && a.BitWidth > 0 {
		sign := "u"
		if a.IsSigned {
			sign = "i"
		}
		if a.Actual == Float {
			sign = "f"
		}
		return fmt.Sprintf("%s%d", sign, a.BitWidth)
	}
	return a.Actual.String()
}
