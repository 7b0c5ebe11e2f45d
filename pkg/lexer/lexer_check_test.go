package lexer

import (
	"testing"

	check "gopkg.in/check.v1"

	"github.com/rtmath/crom/internal/config"
	"github.com/rtmath/crom/internal/token"
)

func TestGocheck(t *testing.T) { check.TestingT(t) }

type LexerSuite struct{}

var _ = check.Suite(&LexerSuite{})

// invariant 1 (spec.md §8): for inputs reaching EOF without an ERROR
// token, the concatenated lexemes equal the source modulo skipped
// whitespace and comments.
func (s *LexerSuite) TestLexemesReconstructSourceModuloWhitespace(c *check.C) {
	src := "i32 x = 5;\ni32 y = x + 1;"
	l := New("t.crom", src, config.Default())

	var reconstructed string
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		c.Assert(tok.Kind, check.Not(check.Equals), token.ERROR)
		reconstructed += tok.Lexeme
	}

	c.Check(reconstructed, check.Equals, "i32x=5;i32y=x+1;")
}

func (s *LexerSuite) TestFloatLiteralRequiresDigitAfterDot(c *check.C) {
	l := New("t.crom", "3.14", config.Default())
	tok := l.NextToken()
	c.Assert(tok.Kind, check.Equals, token.FLOAT_CONSTANT)
	c.Check(tok.Lexeme, check.Equals, "3.14")
}

func (s *LexerSuite) TestBoolKeywordsAreDistinctFromBoolLiteralKind(c *check.C) {
	l := New("t.crom", "true false", config.Default())
	first := l.NextToken()
	second := l.NextToken()
	c.Check(first.Kind, check.Equals, token.TRUE)
	c.Check(second.Kind, check.Equals, token.FALSE)
}
