package value_test

import (
	"testing"

	"github.com/rtmath/crom/internal/token"
	"github.com/rtmath/crom/internal/types"
	"github.com/rtmath/crom/internal/value"
)

func TestSmallestContainingIntPicksNarrowestWidth(t *testing.T) {
	cases := []struct {
		in        int64
		wantWidth int
	}{
		{0, 8}, {127, 8}, {-128, 8},
		{128, 16}, {-129, 16}, {32767, 16},
		{32768, 32}, {-32769, 32}, {2147483647, 32},
		{2147483648, 64}, {-2147483649, 64},
	}
	for _, c := range cases {
		ann := value.SmallestContainingInt(c.in)
		if ann.BitWidth != c.wantWidth || !ann.IsSigned {
			t.Errorf("SmallestContainingInt(%d) = {width:%d signed:%v}, want width %d signed true",
				c.in, ann.BitWidth, ann.IsSigned, c.wantWidth)
		}
	}
}

func TestSmallestContainingUintPicksNarrowestWidth(t *testing.T) {
	cases := []struct {
		in        uint64
		wantWidth int
	}{
		{0, 8}, {255, 8}, {256, 16}, {65535, 16},
		{65536, 32}, {4294967295, 32}, {4294967296, 64},
	}
	for _, c := range cases {
		ann := value.SmallestContainingUint(c.in)
		if ann.BitWidth != c.wantWidth || ann.IsSigned {
			t.Errorf("SmallestContainingUint(%d) = {width:%d signed:%v}, want width %d signed false",
				c.in, ann.BitWidth, ann.IsSigned, c.wantWidth)
		}
	}
}

func TestSmallestContainingFloatPrefersF32WhenLossless(t *testing.T) {
	if w := value.SmallestContainingFloat(1.5).BitWidth; w != 32 {
		t.Errorf("SmallestContainingFloat(1.5).BitWidth = %d, want 32", w)
	}
	// 2^24+1 is the smallest positive integer float32 cannot represent
	// exactly (its 24-bit significand rounds it to 2^24).
	if w := value.SmallestContainingFloat(16777217.0).BitWidth; w != 64 {
		t.Errorf("expected a value that doesn't round-trip through float32 to stay f64, got width %d", w)
	}
}

func TestFromTokenIntConstant(t *testing.T) {
	v, err := value.FromToken(token.Token{Kind: token.INT_CONSTANT, Lexeme: "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := v.(value.Uint)
	if !ok {
		t.Fatalf("expected value.Uint, got %T", v)
	}
	if i.V != 5 || i.Ann.BitWidth != 8 {
		t.Fatalf("expected Uint{5, u8-width}, got %+v", i)
	}
}

func TestFromTokenOverflowingIntReportsOverflow(t *testing.T) {
	v, err := value.FromToken(token.Token{Kind: token.INT_CONSTANT, Lexeme: "99999999999999999999"})
	if err == nil {
		t.Fatalf("expected an overflow error")
	}
	if v.Kind() != value.KindOverflow {
		t.Fatalf("expected an Overflow sentinel, got %T", v)
	}
}

func TestFromTokenLargeUnsignedFallsBackToUint(t *testing.T) {
	// Exceeds int64's range but fits uint64 — FromToken's INT_CONSTANT
	// branch parses it as unsigned rather than reporting overflow.
	v, err := value.FromToken(token.Token{Kind: token.INT_CONSTANT, Lexeme: "18446744073709551615"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := v.(value.Uint)
	if !ok || u.V != 18446744073709551615 {
		t.Fatalf("expected Uint{max uint64}, got %+v (%T)", v, v)
	}
}

func TestFromTokenFloatUnderflowReportsOverflow(t *testing.T) {
	v, err := value.FromToken(token.Token{Kind: token.FLOAT_CONSTANT, Lexeme: "1e-320"})
	if err == nil {
		t.Fatalf("expected an underflow error for a subnormal float literal")
	}
	if v.Kind() != value.KindOverflow {
		t.Fatalf("expected an Overflow sentinel, got %T", v)
	}
}

func TestFromTokenHexAndBinaryConstants(t *testing.T) {
	hex, err := value.FromToken(token.Token{Kind: token.HEX_CONSTANT, Lexeme: "0xFF"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u, ok := hex.(value.Uint); !ok || u.V != 255 {
		t.Fatalf("expected Uint{255}, got %+v (%T)", hex, hex)
	}

	bin, err := value.FromToken(token.Token{Kind: token.BINARY_CONSTANT, Lexeme: "b'101'"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u, ok := bin.(value.Uint); !ok || u.V != 5 {
		t.Fatalf("expected Uint{5}, got %+v (%T)", bin, bin)
	}
}

func TestFromTokenBoolCharString(t *testing.T) {
	b, _ := value.FromToken(token.Token{Kind: token.TRUE, Lexeme: "true"})
	if b.(value.Bool).V != true {
		t.Fatalf("expected Bool{true}, got %+v", b)
	}

	c, _ := value.FromToken(token.Token{Kind: token.CHAR_CONSTANT, Lexeme: "a"})
	if c.(value.Char).V != 'a' {
		t.Fatalf("expected Char{'a'}, got %+v", c)
	}

	s, _ := value.FromToken(token.Token{Kind: token.STRING_LITERAL, Lexeme: "hi"})
	str, ok := s.(value.String)
	if !ok || str.V != "hi" || !str.Ann.IsArray {
		t.Fatalf("expected an array-annotated String{\"hi\"}, got %+v", s)
	}
}

func TestNoneEqualsOnlyNone(t *testing.T) {
	n := value.None{}
	if !n.Equals(value.None{}) {
		t.Fatalf("expected None to equal None")
	}
	if n.Equals(value.NewInt(0)) {
		t.Fatalf("expected None to not equal a zero Int")
	}
}

func TestIntAndFloatAnnotationsReportTheirOstensibleKind(t *testing.T) {
	if a := value.NewInt(5).Annotation(); a.Ostensible != types.Int {
		t.Fatalf("Int.Annotation() should report Ostensible Int, got %v", a)
	}
	if a := value.NewFloat(1.5).Annotation(); a.Ostensible != types.Float {
		t.Fatalf("Float.Annotation() should report Ostensible Float, got %v", a)
	}
}
