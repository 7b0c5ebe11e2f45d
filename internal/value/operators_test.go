package value_test

import (
	"testing"

	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/value"
)

func stringToken(s string) token.Token {
	return token.Token{Kind: token.STRING_LITERAL, Lexeme: s}
}

// mustBool returns a checker that takes an operator's (Value, error)
// result directly, e.g. mustBool(t)(value.Equal(a, b)).
func mustBool(t *testing.T) func(value.Value, error) bool {
	return func(v value.Value, err error) bool {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, ok := v.(value.Bool)
		if !ok {
			t.Fatalf("expected value.Bool, got %T", v)
		}
		return b.V
	}
}

func TestAddDispatchesOnOperandKind(t *testing.T) {
	sum, err := value.Add(value.NewInt(2), value.NewInt(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.(value.Int).V != 5 {
		t.Fatalf("expected 2+3=5, got %v", sum)
	}

	mixed, err := value.Add(value.NewInt(2), value.NewFloat(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f := mixed.(value.Float).V; f != 2.5 {
		t.Fatalf("expected int+float to promote to float 2.5, got %v", f)
	}

	if _, err := value.Add(value.NewInt(1), value.Bool{V: true}); err == nil {
		t.Fatalf("expected an error adding an int to a bool")
	}
}

func TestSubMulDiv(t *testing.T) {
	if diff, _ := value.Sub(value.NewInt(5), value.NewInt(3)); diff.(value.Int).V != 2 {
		t.Fatalf("expected 5-3=2, got %v", diff)
	}
	if prod, _ := value.Mul(value.NewInt(4), value.NewInt(3)); prod.(value.Int).V != 12 {
		t.Fatalf("expected 4*3=12, got %v", prod)
	}
	if quot, _ := value.Div(value.NewInt(9), value.NewInt(2)); quot.(value.Int).V != 4 {
		t.Fatalf("expected truncating integer division 9/2=4, got %v", quot)
	}
}

func TestDivByZeroReportsOverflowSentinel(t *testing.T) {
	v, err := value.Div(value.NewInt(1), value.NewInt(0))
	if err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
	if v.Kind() != value.KindOverflow {
		t.Fatalf("expected an Overflow sentinel, got %T", v)
	}
}

func TestModOnlyDefinedForIntAndUint(t *testing.T) {
	r, err := value.Mod(value.NewInt(7), value.NewInt(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.(value.Int).V != 1 {
		t.Fatalf("expected 7 mod 3 = 1, got %v", r)
	}

	if _, err := value.Mod(value.NewFloat(7.5), value.NewFloat(3)); err == nil {
		t.Fatalf("expected mod on floats to be rejected")
	}
}

func TestEqualDispatchesToValueEquals(t *testing.T) {
	if !mustBool(t)(value.Equal(value.NewInt(5), value.NewInt(5))) {
		t.Fatalf("expected 5 == 5")
	}
	if mustBool(t)(value.Equal(value.NewInt(5), value.NewInt(6))) {
		t.Fatalf("expected 5 != 6")
	}
}

func TestLessAndGreaterAcrossNumericKinds(t *testing.T) {
	if !mustBool(t)(value.Less(value.NewInt(1), value.NewFloat(1.5))) {
		t.Fatalf("expected 1 < 1.5")
	}
	if !mustBool(t)(value.Greater(value.NewUint(10), value.NewInt(3))) {
		t.Fatalf("expected 10 > 3 across uint/int operands")
	}
	if _, err := value.Less(value.NewInt(1), value.Bool{V: true}); err == nil {
		t.Fatalf("expected comparing an int to a bool to be rejected")
	}
}

func TestLessOnStrings(t *testing.T) {
	a, _ := value.FromToken(stringToken("abc"))
	b, _ := value.FromToken(stringToken("abd"))
	if !mustBool(t)(value.Less(a, b)) {
		t.Fatalf(`expected "abc" < "abd"`)
	}
}

// TestLogicalOperatorsMatchScenarioE2 exercises the value model over
// `false && (true || false)`, evaluating right-to-left the way a
// parsed expression tree would feed Or's result into And.
func TestLogicalOperatorsMatchScenarioE2(t *testing.T) {
	inner, err := value.Or(value.Bool{V: true}, value.Bool{V: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := value.And(value.Bool{V: false}, inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(value.Bool).V != false {
		t.Fatalf("expected false && (true || false) == false, got %v", result)
	}
}

func TestAndOrRejectNonBoolOperands(t *testing.T) {
	if _, err := value.And(value.NewInt(1), value.Bool{V: true}); err == nil {
		t.Fatalf("expected && to reject a non-bool operand")
	}
	if _, err := value.Or(value.NewInt(1), value.Bool{V: true}); err == nil {
		t.Fatalf("expected || to reject a non-bool operand")
	}
}

func TestNot(t *testing.T) {
	if !mustBool(t)(value.Not(value.Bool{V: false})) {
		t.Fatalf("expected !false == true")
	}
	if _, err := value.Not(value.NewInt(1)); err == nil {
		t.Fatalf("expected ! to reject a non-bool operand")
	}
}

func TestNeg(t *testing.T) {
	n, err := value.Neg(value.NewInt(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.(value.Int).V != -5 {
		t.Fatalf("expected -5, got %v", n)
	}

	if _, err := value.Neg(value.Bool{V: true}); err == nil {
		t.Fatalf("expected unary - to reject a non-numeric operand")
	}
}
