package lexer

import (
	"testing"

	"github.com/rtmath/crom/internal/config"
	"github.com/rtmath/crom/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New("test.crom", src, config.Default())
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF || tok.Kind == token.ERROR {
			break
		}
	}
	return toks
}

func TestNextTokenPunctuatorsAndKeywords(t *testing.T) {
	src := `i32 x = 5; x += 1;`

	want := []token.Kind{
		token.I32, token.IDENTIFIER, token.EQUALS, token.INT_CONSTANT, token.SEMICOLON,
		token.IDENTIFIER, token.PLUS_EQUALS, token.INT_CONSTANT, token.SEMICOLON,
		token.EOF,
	}

	got := scanAll(t, src)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, got[i].Kind, k)
		}
	}
}

func TestNextTokenEquality(t *testing.T) {
	got := scanAll(t, `a == b`)
	want := []token.Kind{token.IDENTIFIER, token.EQUALITY, token.IDENTIFIER, token.EOF}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, got[i].Kind, k)
		}
	}
}

func TestNextTokenTerseNotEquals(t *testing.T) {
	got := scanAll(t, `x != 1;`)
	if got[1].Kind != token.NOT_EQUALS {
		t.Fatalf("expected NOT_EQUALS, got %s", got[1].Kind)
	}
}

func TestNextTokenDotIsDistinctFromComma(t *testing.T) {
	got := scanAll(t, `a.b, c`)
	want := []token.Kind{token.IDENTIFIER, token.DOT, token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.EOF}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, got[i].Kind, k)
		}
	}
}

func TestNextTokenDotCommaAliasConfig(t *testing.T) {
	cfg := config.Default()
	cfg.AllowDotCommaAlias = true
	l := New("test.crom", `a.b`, cfg)

	toks := []token.Token{l.NextToken(), l.NextToken(), l.NextToken()}
	if toks[1].Kind != token.COMMA {
		t.Fatalf("with AllowDotCommaAlias, '.' should lex as COMMA, got %s", toks[1].Kind)
	}
}

func TestNextTokenHexConstant(t *testing.T) {
	got := scanAll(t, `0xFFFFFFFFFFFFFFFF`)
	if got[0].Kind != token.HEX_CONSTANT {
		t.Fatalf("expected HEX_CONSTANT, got %s", got[0].Kind)
	}

	tooWide := scanAll(t, `0x10000000000000000`)
	if tooWide[0].Kind != token.ERROR {
		t.Fatalf("expected ERROR for 65-bit hex constant, got %s", tooWide[0].Kind)
	}
}

func TestNextTokenBinaryConstant(t *testing.T) {
	sixtyFourOnes := "b'" + repeat("1", 64) + "'"
	got := scanAll(t, sixtyFourOnes)
	if got[0].Kind != token.BINARY_CONSTANT {
		t.Fatalf("expected BINARY_CONSTANT, got %s", got[0].Kind)
	}

	sixtyFiveOnes := "b'" + repeat("1", 65) + "'"
	tooWide := scanAll(t, sixtyFiveOnes)
	if tooWide[0].Kind != token.ERROR {
		t.Fatalf("expected ERROR for 65-bit binary constant, got %s", tooWide[0].Kind)
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestNextTokenUnterminatedString(t *testing.T) {
	got := scanAll(t, `"unterminated`)
	if got[0].Kind != token.ERROR {
		t.Fatalf("expected ERROR, got %s", got[0].Kind)
	}
}

func TestNextTokenLoneColonIsError(t *testing.T) {
	got := scanAll(t, `a : b`)
	if got[1].Kind != token.ERROR {
		t.Fatalf("expected ERROR for lone ':', got %s", got[1].Kind)
	}
}

func TestNextTokenColonSeparator(t *testing.T) {
	got := scanAll(t, `main() :: i32`)
	found := false
	for _, tok := range got {
		if tok.Kind == token.COLON_SEPARATOR {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a COLON_SEPARATOR token in %v", got)
	}
}

func TestNextTokenLineTracking(t *testing.T) {
	got := scanAll(t, "i32 x = 1;\n\ni32 y = 2;")
	var secondY token.Token
	for _, tok := range got {
		if tok.Kind == token.IDENTIFIER && tok.Lexeme == "y" {
			secondY = tok
		}
	}
	if secondY.Line != 3 {
		t.Fatalf("expected 'y' on line 3, got line %d", secondY.Line)
	}
}

func TestNextTokenSkipsLineComments(t *testing.T) {
	got := scanAll(t, "i32 x = 1; // trailing comment\ni32 y = 2;")
	for _, tok := range got {
		if tok.Kind == token.ERROR {
			t.Fatalf("unexpected error token: %v", tok)
		}
	}
}

func TestNextTokenMaxIdentifierLengthUnboundedByDefault(t *testing.T) {
	long := repeat("x", 100)
	got := scanAll(t, long+" = 1;")
	if got[0].Kind != token.IDENTIFIER {
		t.Fatalf("expected a 100-byte identifier to lex fine by default, got %s", got[0].Kind)
	}
}

func TestNextTokenMaxIdentifierLengthRejectsOverLongIdentifiers(t *testing.T) {
	cfg := config.Default()
	cfg.MaxIdentifierLength = 8
	l := New("test.crom", "shortok toolongname", cfg)

	first := l.NextToken()
	if first.Kind != token.IDENTIFIER {
		t.Fatalf("expected a 7-byte identifier within the limit to lex fine, got %s", first.Kind)
	}

	second := l.NextToken()
	if second.Kind != token.ERROR {
		t.Fatalf("expected an over-long identifier to lex as ERROR, got %s", second.Kind)
	}
}

func TestNextTokenMaxIdentifierLengthExemptsKeywords(t *testing.T) {
	cfg := config.Default()
	cfg.MaxIdentifierLength = 2
	l := New("test.crom", "continue", cfg)
	tok := l.NextToken()
	if tok.Kind != token.CONTINUE {
		t.Fatalf("expected the CONTINUE keyword to be exempt from MaxIdentifierLength, got %s", tok.Kind)
	}
}

func TestNextTokenColumnTracking(t *testing.T) {
	l := New("test.crom", "i32 x", config.Default())
	first := l.NextToken()
	second := l.NextToken()
	if first.Column != 1 {
		t.Fatalf("expected 'i32' at column 1, got %d", first.Column)
	}
	if second.Column != 5 {
		t.Fatalf("expected 'x' at column 5, got %d", second.Column)
	}
}

func TestNextTokenColumnHonorsConfiguredTabWidth(t *testing.T) {
	cfg := config.Default()
	cfg.TabWidth = 8
	l := New("test.crom", "\tx", cfg)
	tok := l.NextToken()
	if tok.Column != 9 {
		t.Fatalf("expected a leading tab with TabWidth 8 to put 'x' at column 9, got %d", tok.Column)
	}
}

func TestNextTokenColumnResetsAcrossNewlines(t *testing.T) {
	l := New("test.crom", "i32 x;\ny", config.Default())
	l.NextToken() // i32
	l.NextToken() // x
	l.NextToken() // ;
	y := l.NextToken()
	if y.Line != 2 || y.Column != 1 {
		t.Fatalf("expected 'y' at line 2 column 1, got line %d column %d", y.Line, y.Column)
	}
}
