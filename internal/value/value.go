package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/types"
)

// smallestNormalFloat64 is the smallest positive normal float64
// (2^-1022). Parsed floats with a smaller non-zero magnitude are
// subnormal and rejected as underflow (spec.md §4.D).
const smallestNormalFloat64 = 2.2250738585072014e-308

// Kind is the tag of a Value. It always agrees with the concrete Go
// type implementing Value (spec.md §3 invariant).
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindUint
	KindFloat
	KindChar
	KindString
	KindBool
	KindArray
	KindOverflow
)

// Value is the tagged-union interface every literal and computed
// result implements.
type Value interface {
	Kind() Kind
	Annotation() types.Annotation
	String() string
	Equals(Value) bool
}

// Int is a signed-integer value (i8..i64, smallest containing width).
type Int struct {
	V   int64
	Ann types.Annotation
}

func (i Int) Kind() Kind               { return KindInt }
func (i Int) Annotation() types.Annotation { return i.Ann }
func (i Int) String() string           { return fmt.Sprintf("%d", i.V) }
func (i Int) Equals(v Value) bool {
	other, ok := v.(Int)
	return ok && i.V == other.V
}

// Uint is an unsigned-integer value (u8..u64, smallest containing width).
type Uint struct {
	V   uint64
	Ann types.Annotation
}

func (u Uint) Kind() Kind               { return KindUint }
func (u Uint) Annotation() types.Annotation { return u.Ann }
func (u Uint) String() string           { return fmt.Sprintf("%d", u.V) }
func (u Uint) Equals(v Value) bool {
	other, ok := v.(Uint)
	return ok && u.V == other.V
}

// Float is a floating-point value (f32/f64, smallest containing width).
type Float struct {
	V   float64
	Ann types.Annotation
}

func (f Float) Kind() Kind               { return KindFloat }
func (f Float) Annotation() types.Annotation { return f.Ann }
func (f Float) String() string           { return strconv.FormatFloat(f.V, 'g', -1, 64) }
func (f Float) Equals(v Value) bool {
	other, ok := v.(Float)
	return ok && f.V == other.V
}

// Char is a single-byte character value.
type Char struct {
	V   byte
	Ann types.Annotation
}

func (c Char) Kind() Kind               { return KindChar }
func (c Char) Annotation() types.Annotation { return c.Ann }
func (c Char) String() string           { return fmt.Sprintf("'%c'", c.V) }
func (c Char) Equals(v Value) bool {
	other, ok := v.(Char)
	return ok && c.V == other.V
}

// String is a string value.
type String struct {
	V   string
	Ann types.Annotation
}

func (s String) Kind() Kind               { return KindString }
func (s String) Annotation() types.Annotation { return s.Ann }
func (s String) String() string           { return fmt.Sprintf("%q", s.V) }
func (s String) Equals(v Value) bool {
	other, ok := v.(String)
	return ok && s.V == other.V
}

// Bool is a boolean value.
type Bool struct {
	V   bool
	Ann types.Annotation
}

func (b Bool) Kind() Kind               { return KindBool }
func (b Bool) Annotation() types.Annotation { return b.Ann }
func (b Bool) String() string           { return strconv.FormatBool(b.V) }
func (b Bool) Equals(v Value) bool {
	other, ok := v.(Bool)
	return ok && b.V == other.V
}

// Array is a fixed-size sequence of values sharing one element type.
type Array struct {
	Elems []Value
	Ann   types.Annotation
}

func (a Array) Kind() Kind               { return KindArray }
func (a Array) Annotation() types.Annotation { return a.Ann }
func (a Array) String() string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a Array) Equals(v Value) bool {
	other, ok := v.(Array)
	if !ok || len(a.Elems) != len(other.Elems) {
		return false
	}
	for i, e := range a.Elems {
		if !e.Equals(other.Elems[i]) {
			return false
		}
	}
	return true
}

// None is the absent/void value.
type None struct{}

func (None) Kind() Kind               { return KindNone }
func (None) Annotation() types.Annotation { return types.None() }
func (None) String() string           { return "none" }
func (None) Equals(v Value) bool {
	_, ok := v.(None)
	return ok
}

// Overflow is the sentinel produced when a literal's value does not
// fit its numeric domain (spec.md §3: "Overflow produces a V_OVERFLOW
// sentinel carrying zero").
type Overflow struct {
	Reason string
}

func (Overflow) Kind() Kind               { return KindOverflow }
func (Overflow) Annotation() types.Annotation { return types.None() }
func (o Overflow) String() string         { return "<overflow: " + o.Reason + ">" }
func (Overflow) Equals(v Value) bool {
	_, ok := v.(Overflow)
	return ok
}

// NewInt builds an Int carrying the smallest signed width that
// contains i (original_source/src/value.c NewIntValue).
func NewInt(i int64) Value {
	return Int{V: i, Ann: SmallestContainingInt(i)}
}

// NewUint builds a Uint carrying the smallest unsigned width that
// contains u (original_source/src/value.c NewUintValue).
func NewUint(u uint64) Value {
	return Uint{V: u, Ann: SmallestContainingUint(u)}
}

// NewFloat builds a Float carrying the smallest float width that
// contains f (original_source/src/value.c NewFloatValue).
func NewFloat(f float64) Value {
	return Float{V: f, Ann: SmallestContainingFloat(f)}
}

// SmallestContainingInt picks i8/i16/i32/i64 — whichever is the
// narrowest signed width containing i. Negative literals are always
// signed (spec.md §9 Open Question 2 / Design Notes: "-1 -> i8").
func SmallestContainingInt(i int64) types.Annotation {
	width := 64
	switch {
	case i >= math.MinInt8 && i <= math.MaxInt8:
		width = 8
	case i >= math.MinInt16 && i <= math.MaxInt16:
		width = 16
	case i >= math.MinInt32 && i <= math.MaxInt32:
		width = 32
	}
	return types.Annotation{Ostensible: types.Int, Actual: types.Int, IsSigned: true, BitWidth: width}
}

// SmallestContainingUint picks u8/u16/u32/u64 — whichever is the
// narrowest unsigned width containing u ("200 -> u8" in spec.md §9).
func SmallestContainingUint(u uint64) types.Annotation {
	width := 64
	switch {
	case u <= math.MaxUint8:
		width = 8
	case u <= math.MaxUint16:
		width = 16
	case u <= math.MaxUint32:
		width = 32
	}
	return types.Annotation{Ostensible: types.Int, Actual: types.Int, IsSigned: false, BitWidth: width}
}

// SmallestContainingFloat picks f32/f64. f32 suffices when f survives
// a round-trip through float32 without loss.
func SmallestContainingFloat(f float64) types.Annotation {
	width := 64
	if float64(float32(f)) == f {
		width = 32
	}
	return types.Annotation{Ostensible: types.Float, Actual: types.Float, IsSigned: true, BitWidth: width}
}

// FromToken constructs a Value from a literal token, applying the
// overflow/underflow detection rules of spec.md §4.D. The returned
// error, when non-nil, is the message a diagnostic should carry; the
// returned Value is then an Overflow sentinel for an out-of-range
// numeric literal, or None for a token kind that is not a literal.
func FromToken(tok token.Token) (Value, error) {
	switch tok.Kind {
	case token.INT_CONSTANT:
		// A non-negative decimal literal takes the narrowest unsigned
		// width (200 -> u8); only a negative one is signed.
		if u, err := strconv.ParseUint(tok.Lexeme, 10, 64); err == nil {
			return NewUint(u), nil
		}
		i, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return Overflow{Reason: "I64 Overflow"}, fmt.Errorf("I64 Overflow")
		}
		return NewInt(i), nil

	case token.HEX_CONSTANT:
		digits := strings.TrimPrefix(tok.Lexeme, "0x")
		u, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return Overflow{Reason: "U64 Overflow"}, fmt.Errorf("U64 Overflow")
		}
		return NewUint(u), nil

	case token.BINARY_CONSTANT:
		digits := strings.TrimSuffix(strings.TrimPrefix(tok.Lexeme, "b'"), "'")
		u, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			return Overflow{Reason: "U64 Overflow"}, fmt.Errorf("U64 Overflow")
		}
		return NewUint(u), nil

	case token.FLOAT_CONSTANT:
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil || math.IsInf(f, 0) {
			return Overflow{Reason: "F64 Overflow"}, fmt.Errorf("F64 Overflow")
		}
		if f != 0 && math.Abs(f) < smallestNormalFloat64 {
			return Overflow{Reason: "F64 Underflow"}, fmt.Errorf("F64 Underflow")
		}
		return NewFloat(f), nil

	case token.BOOL_LITERAL, token.TRUE, token.FALSE:
		return Bool{V: tok.Lexeme == "true", Ann: types.Annotation{Ostensible: types.Bool, Actual: types.Bool}}, nil

	case token.CHAR_CONSTANT:
		var c byte
		if len(tok.Lexeme) > 0 {
			c = tok.Lexeme[0]
		}
		return Char{V: c, Ann: types.Annotation{Ostensible: types.Char, Actual: types.Char}}, nil

	case token.STRING_LITERAL:
		return String{
			V:   tok.Lexeme,
			Ann: types.Array(types.Annotation{Ostensible: types.String, Actual: types.String}, len(tok.Lexeme)),
		}, nil

	default:
		return None{}, fmt.Errorf("FromToken: %s not implemented", tok.Kind)
	}
}
