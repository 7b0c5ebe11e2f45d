package value

import (
	"errors"
	"fmt"

	"github.com/rtmath/crom/internal/types"
)

// Add, Sub, Mul, Div dispatch on the first operand's Kind and are
// defined for Int, Uint, and Float (spec.md §4.D). They mirror
// original_source/src/value.c's AddValues/SubValues/MulValues/
// DivValues, generalized from "exactly matching types" to: Int with
// Int, Uint with Uint, or either with Float (promoting to Float), the
// result width re-inferred from the computed value. Mixing Int with
// Uint is an error.
func Add(a, b Value) (Value, error) { return arith(a, b, "add", func(x, y int64) int64 { return x + y }, func(x, y uint64) uint64 { return x + y }, func(x, y float64) float64 { return x + y }) }
func Sub(a, b Value) (Value, error) { return arith(a, b, "subtract", func(x, y int64) int64 { return x - y }, func(x, y uint64) uint64 { return x - y }, func(x, y float64) float64 { return x - y }) }
func Mul(a, b Value) (Value, error) { return arith(a, b, "multiply", func(x, y int64) int64 { return x * y }, func(x, y uint64) uint64 { return x * y }, func(x, y float64) float64 { return x * y }) }

// Div rejects division by zero before dispatching, per value.c's
// DivValues contract (integer division truncates; no implicit
// promotion to float as the Nix-derived teacher did, since this
// language's integers are sized and explicit).
func Div(a, b Value) (Value, error) {
	switch z := b.(type) {
	case Int:
		if z.V == 0 {
			return Overflow{Reason: "division by zero"}, errors.New("division by zero")
		}
	case Uint:
		if z.V == 0 {
			return Overflow{Reason: "division by zero"}, errors.New("division by zero")
		}
	case Float:
		if z.V == 0 {
			return Overflow{Reason: "division by zero"}, errors.New("division by zero")
		}
	}
	return arith(a, b, "divide", func(x, y int64) int64 { return x / y }, func(x, y uint64) uint64 { return x / y }, func(x, y float64) float64 { return x / y })
}

// Mod is defined only for Int and Uint (spec.md §4.D: "mod only on
// int/uint").
func Mod(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		if !ok {
			return nil, fmt.Errorf("cannot mod int by %v", b.Kind())
		}
		if y.V == 0 {
			return Overflow{Reason: "division by zero"}, errors.New("division by zero")
		}
		return NewInt(x.V % y.V), nil
	case Uint:
		y, ok := b.(Uint)
		if !ok {
			return nil, fmt.Errorf("cannot mod uint by %v", b.Kind())
		}
		if y.V == 0 {
			return Overflow{Reason: "division by zero"}, errors.New("division by zero")
		}
		return NewUint(x.V % y.V), nil
	default:
		return nil, fmt.Errorf("mod is only defined for int/uint, got %v", a.Kind())
	}
}

func arith(a, b Value, verb string, onInt func(int64, int64) int64, onUint func(uint64, uint64) uint64, onFloat func(float64, float64) float64) (Value, error) {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return NewInt(onInt(x.V, y.V)), nil
		case Float:
			return NewFloat(onFloat(float64(x.V), y.V)), nil
		default:
			return nil, fmt.Errorf("cannot %s int with %v", verb, b.Kind())
		}
	case Uint:
		switch y := b.(type) {
		case Uint:
			return NewUint(onUint(x.V, y.V)), nil
		case Float:
			return NewFloat(onFloat(float64(x.V), y.V)), nil
		default:
			return nil, fmt.Errorf("cannot %s uint with %v", verb, b.Kind())
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return NewFloat(onFloat(x.V, float64(y.V))), nil
		case Uint:
			return NewFloat(onFloat(x.V, float64(y.V))), nil
		case Float:
			return NewFloat(onFloat(x.V, y.V)), nil
		default:
			return nil, fmt.Errorf("cannot %s float with %v", verb, b.Kind())
		}
	default:
		return nil, fmt.Errorf("cannot %s values of kind %v", verb, a.Kind())
	}
}

// Equal is defined for all scalar kinds (spec.md §4.D).
func Equal(a, b Value) (Value, error) {
	return Bool{V: a.Equals(b), Ann: boolAnnotation()}, nil
}

// Less and Greater are defined for numeric kinds and String.
func Less(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		y, ok := asFloat(b)
		if !ok {
			return nil, fmt.Errorf("cannot compare int with %v", b.Kind())
		}
		return boolValue(float64(x.V) < y), nil
	case Uint:
		y, ok := asFloat(b)
		if !ok {
			return nil, fmt.Errorf("cannot compare uint with %v", b.Kind())
		}
		return boolValue(float64(x.V) < y), nil
	case Float:
		y, ok := asFloat(b)
		if !ok {
			return nil, fmt.Errorf("cannot compare float with %v", b.Kind())
		}
		return boolValue(x.V < y), nil
	case String:
		y, ok := b.(String)
		if !ok {
			return nil, fmt.Errorf("cannot compare string with %v", b.Kind())
		}
		return boolValue(x.V < y.V), nil
	default:
		return nil, fmt.Errorf("cannot compare values of kind %v", a.Kind())
	}
}

func Greater(a, b Value) (Value, error) { return Less(b, a) }

func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x.V), true
	case Uint:
		return float64(x.V), true
	case Float:
		return x.V, true
	default:
		return 0, false
	}
}

func boolValue(b bool) Value { return Bool{V: b, Ann: boolAnnotation()} }

func boolAnnotation() types.Annotation {
	return types.Annotation{Ostensible: types.Bool, Actual: types.Bool}
}

// And, Or are defined only for Bool; mismatched or non-bool operands
// are fatal (spec.md §4.D), matching value.c's LogicalAND/LogicalOR.
func And(a, b Value) (Value, error) {
	x, ok := a.(Bool)
	y, ok2 := b.(Bool)
	if !ok || !ok2 {
		return nil, errors.New("&& requires boolean operands")
	}
	return Bool{V: x.V && y.V, Ann: x.Ann}, nil
}

func Or(a, b Value) (Value, error) {
	x, ok := a.(Bool)
	y, ok2 := b.(Bool)
	if !ok || !ok2 {
		return nil, errors.New("|| requires boolean operands")
	}
	return Bool{V: x.V || y.V, Ann: x.Ann}, nil
}

// Not is defined only for Bool.
func Not(v Value) (Value, error) {
	x, ok := v.(Bool)
	if !ok {
		return nil, fmt.Errorf("! operator requires a boolean operand, got %v", v.Kind())
	}
	return Bool{V: !x.V, Ann: x.Ann}, nil
}

// Neg is defined for Int and Float (unary minus).
func Neg(v Value) (Value, error) {
	switch x := v.(type) {
	case Int:
		return NewInt(-x.V), nil
	case Float:
		return NewFloat(-x.V), nil
	default:
		return nil, fmt.Errorf("unary - requires a numeric operand, got %v", v.Kind())
	}
}
