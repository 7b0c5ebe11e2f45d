package lexer

import (
	"fmt"

	"github.com/juju/loggo"

	"github.com/rtmath/crom/internal/clog"
	"github.com/rtmath/crom/internal/config"
	"github.com/rtmath/crom/internal/token"
)

// Lexer scans one source buffer into a Token stream. It holds no
// output buffer of its own; callers drive it one NextToken() call at
// a time, mirroring original_source/lexer.c's single global Lexer
// struct but threaded explicitly instead of living at file scope
// (spec.md §9 Design Note: "global parser/lexer/scope state ->
// explicit context").
type Lexer struct {
	filename string
	src      string
	start    int // byte offset of the lexeme currently being scanned
	end      int // read cursor; one past the last consumed byte
	line     int
	column   int // 1-based column of the byte at l.end
	startCol int // column captured at the start of the token being scanned

	cfg config.Config
	log loggo.Logger
}

// New returns a Lexer ready to scan src. filename is attached to every
// emitted Token for diagnostics; it may be empty.
func New(filename, src string, cfg config.Config) *Lexer {
	return &Lexer{
		filename: filename,
		src:      src,
		line:     1,
		column:   1,
		cfg:      cfg,
		log:      clog.Get("lexer"),
	}
}

func (l *Lexer) atEOF() bool { return l.end >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.atEOF() {
		return 0
	}
	return l.src[l.end]
}

func (l *Lexer) peekNext() byte {
	if l.end+1 >= len(l.src) {
		return 0
	}
	return l.src[l.end+1]
}

// advance consumes one byte and keeps column in step with it: a
// newline resets to column 1 (line tracking itself stays the caller's
// job, since callers need to order the line++ relative to other
// state), a tab advances by cfg.TabWidth (falling back to 1 when
// TabWidth isn't positive), anything else by 1.
func (l *Lexer) advance() byte {
	c := l.src[l.end]
	l.end++
	switch {
	case c == '\n':
		l.column = 1
	case c == '\t':
		width := l.cfg.TabWidth
		if width <= 0 {
			width = 1
		}
		l.column += width
	default:
		l.column++
	}
	return c
}

// match consumes the next byte and reports true if it equals c,
// otherwise leaves the cursor untouched (original_source's Match).
func (l *Lexer) match(c byte) bool {
	if l.peek() != c {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) lexemeLength() int { return l.end - l.start }

func (l *Lexer) makeToken(kind token.Kind) token.Token {
	return token.Token{
		Kind:     kind,
		Lexeme:   l.src[l.start:l.end],
		Line:     l.line,
		Column:   l.startCol,
		Filename: l.filename,
	}
}

func (l *Lexer) errorToken(message string) token.Token {
	return token.Token{Kind: token.ERROR, Lexeme: message, Line: l.line, Column: l.startCol, Filename: l.filename}
}

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns,
// newlines (tracking line numbers), and "//" line comments
// (original_source/lexer.c's SkipWhitespace — this language has no
// block-comment form).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.advance()
		case '\n':
			l.line++
			l.advance()
		case '/':
			if l.peekNext() == '/' {
				l.log.Tracef("skipping line comment at line %d", l.line)
				for l.peek() != '\n' && !l.atEOF() {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// scanHex matches original_source/lexer.c's Hex(): "0x" followed by up
// to 16 hex digits. A 17th digit makes the constant wider than 64 bits
// and is a lex error, not a parse-time overflow.
func (l *Lexer) scanHex() token.Token {
	l.advance() // consume the 'x'
	for isHexDigit(l.peek()) {
		l.advance()
	}
	if l.lexemeLength() > 2+16 {
		return l.errorToken("Hex Constant cannot be more than 64 bits wide")
	}
	l.log.Tracef("hex constant %q at line %d", l.src[l.start:l.end], l.line)
	return l.makeToken(token.HEX_CONSTANT)
}

// scanBinary matches original_source/lexer.c's Binary(): "b'" followed
// by up to 64 binary digits and a closing "'".
func (l *Lexer) scanBinary() token.Token {
	l.advance() // consume the opening "'"
	for l.peek() == '0' || l.peek() == '1' {
		l.advance()
	}
	if l.peek() != '\'' {
		return l.errorToken(`Expected "'" after Binary Constant`)
	}
	l.advance() // consume the closing "'"
	if l.lexemeLength() > 3+64 {
		return l.errorToken("Binary Constant cannot be more than 64 bits wide")
	}
	l.log.Tracef("binary constant %q at line %d", l.src[l.start:l.end], l.line)
	return l.makeToken(token.BINARY_CONSTANT)
}

// scanNumber matches original_source/lexer.c's Number(): a decimal
// integer, optionally followed by '.' and a fractional part — a '.'
// not followed by a digit is not part of the number (it may be a DOT
// or COMMA token instead).
func (l *Lexer) scanNumber() token.Token {
	isFloat := false
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	if isFloat {
		return l.makeToken(token.FLOAT_CONSTANT)
	}
	return l.makeToken(token.INT_CONSTANT)
}

// scanChar matches original_source/lexer.c's Char(): exactly one value
// byte followed by a closing quote, no escape handling.
func (l *Lexer) scanChar() token.Token {
	l.advance() // the char value
	l.advance() // closing "'"
	return l.makeToken(token.CHAR_CONSTANT)
}

// scanString matches original_source/lexer.c's String(): consumes up
// to the closing '"'. An embedded newline or EOF before the closing
// quote is a lex error (spec.md §7: "unterminated string, multi-line
// string").
func (l *Lexer) scanString() token.Token {
	for l.peek() != '"' && !l.atEOF() {
		if l.peek() == '\n' {
			return l.errorToken("Multi-line strings are not allowed")
		}
		l.advance()
	}
	if l.atEOF() {
		return l.errorToken("Unterminated string.")
	}
	l.advance() // closing '"'
	return l.makeToken(token.STRING_LITERAL)
}

// scanIdentifier matches original_source/lexer.c's Identifier(): any
// run of alpha/digit bytes, classified against the keyword table.
// Reserved words are exempt from cfg.MaxIdentifierLength — the limit
// bounds user-chosen names, not the fixed keyword set.
func (l *Lexer) scanIdentifier() token.Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	lexeme := l.src[l.start:l.end]
	kind := token.LookupIdentifier(lexeme)
	if kind != token.IDENTIFIER {
		l.log.Tracef("keyword %q at line %d", lexeme, l.line)
		return l.makeToken(kind)
	}

	if max := l.cfg.MaxIdentifierLength; max > 0 && len(lexeme) > max {
		return l.errorToken(fmt.Sprintf("Identifier %q exceeds maximum length %d", lexeme, max))
	}
	return l.makeToken(kind)
}

// NextToken returns the next token from the source. Repeated calls
// after an EOF token continue to return EOF (original_source/lexer.c's
// AtEOF check at the top of ScanToken).
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	l.start = l.end
	l.startCol = l.column

	if l.atEOF() {
		return l.makeToken(token.EOF)
	}

	c := l.advance()

	if c == '0' && l.peek() == 'x' {
		return l.scanHex()
	}
	if isDigit(c) {
		return l.scanNumber()
	}
	if c == 'b' && l.peek() == '\'' {
		return l.scanBinary()
	}
	if isAlpha(c) {
		return l.scanIdentifier()
	}

	switch c {
	case '{':
		return l.makeToken(token.LBRACE)
	case '}':
		return l.makeToken(token.RBRACE)
	case '(':
		return l.makeToken(token.LPAREN)
	case ')':
		return l.makeToken(token.RPAREN)
	case '[':
		return l.makeToken(token.LBRACKET)
	case ']':
		return l.makeToken(token.RBRACKET)

	case ',':
		return l.makeToken(token.COMMA)
	case '.':
		// spec.md §9 Open Question 1: the original aliases '.' to
		// COMMA. Default behavior introduces the distinct DOT kind;
		// config.AllowDotCommaAlias restores the original aliasing
		// for callers that depend on it.
		if l.cfg.AllowDotCommaAlias {
			return l.makeToken(token.COMMA)
		}
		return l.makeToken(token.DOT)

	case ':':
		if l.match(':') {
			return l.makeToken(token.COLON_SEPARATOR)
		}
		return l.errorToken("Invalid token ':'")
	case ';':
		return l.makeToken(token.SEMICOLON)

	case '+':
		if l.match('=') {
			return l.makeToken(token.PLUS_EQUALS)
		}
		if l.match('+') {
			return l.makeToken(token.PLUS_PLUS)
		}
		return l.makeToken(token.PLUS)
	case '-':
		if l.match('=') {
			return l.makeToken(token.MINUS_EQUALS)
		}
		if l.match('-') {
			return l.makeToken(token.MINUS_MINUS)
		}
		return l.makeToken(token.MINUS)
	case '*':
		if l.match('=') {
			return l.makeToken(token.TIMES_EQUALS)
		}
		return l.makeToken(token.ASTERISK)
	case '/':
		if l.match('=') {
			return l.makeToken(token.DIVIDE_EQUALS)
		}
		return l.makeToken(token.DIVIDE)
	case '%':
		if l.match('=') {
			return l.makeToken(token.MODULO_EQUALS)
		}
		return l.makeToken(token.MODULO)

	case '^':
		if l.match('=') {
			return l.makeToken(token.XOR_EQUALS)
		}
		return l.makeToken(token.BITWISE_XOR)
	case '&':
		if l.match('=') {
			return l.makeToken(token.AND_EQUALS)
		}
		if l.match('&') {
			return l.makeToken(token.LOGICAL_AND)
		}
		return l.makeToken(token.BITWISE_AND)
	case '|':
		if l.match('=') {
			return l.makeToken(token.OR_EQUALS)
		}
		if l.match('|') {
			return l.makeToken(token.LOGICAL_OR)
		}
		return l.makeToken(token.BITWISE_OR)
	case '~':
		if l.match('=') {
			return l.makeToken(token.TILDE_EQUALS)
		}
		return l.makeToken(token.BITWISE_NOT)

	case '!':
		if l.match('=') {
			return l.makeToken(token.NOT_EQUALS)
		}
		return l.makeToken(token.LOGICAL_NOT)
	case '?':
		return l.makeToken(token.QUESTIONMARK)

	case '<':
		if l.match('<') {
			if l.match('=') {
				return l.makeToken(token.LEFT_SHIFT_EQUALS)
			}
			return l.makeToken(token.LEFT_SHIFT)
		}
		if l.match('=') {
			return l.makeToken(token.LESS_EQUAL)
		}
		return l.makeToken(token.LESS_THAN)
	case '>':
		if l.match('>') {
			if l.match('=') {
				return l.makeToken(token.RIGHT_SHIFT_EQUALS)
			}
			return l.makeToken(token.RIGHT_SHIFT)
		}
		if l.match('=') {
			return l.makeToken(token.GREATER_EQUAL)
		}
		return l.makeToken(token.GREATER_THAN)

	case '=':
		if l.match('=') {
			return l.makeToken(token.EQUALITY)
		}
		return l.makeToken(token.EQUALS)

	case '\'':
		return l.scanChar()
	case '"':
		return l.scanString()
	}

	return l.errorToken("Unexpected token")
}
