// Package lexer provides MiniLang source code tokenization.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/kolkov/minilang/internal/token"
)

// ErrorHandler receives lexical errors. code is the integer value of the
// offending character (0 at end of input).
type ErrorHandler func(pos token.Position, code int, msg string)

// Lexer tokenizes MiniLang source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Current byte offset
	pos     token.Position // Current position
	nextPos token.Position // Position of next character

	onError ErrorHandler
	errors  int
}

// New creates a new Lexer for the given source code.
// onError may be nil, in which case errors are only counted.
func New(src []byte, onError ErrorHandler) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
		onError: onError,
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string, onError ErrorHandler) *Lexer {
	return New([]byte(src), onError)
}

// Token represents a scanned token with its position and lexeme.
// Value holds the exact source text of the token; "<EOF>" for EOF.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// String formats the token as a transcript entry: <SYMBOLIC_NAME, lexeme, line>.
func (t Token) String() string {
	return fmt.Sprintf("<%s, %s, %d>", t.Type, t.Value, t.Pos.Line)
}

// Tokenize scans src to completion. The returned slice always ends with EOF.
func Tokenize(src []byte, onError ErrorHandler) []Token {
	l := New(src, onError)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// ErrorCount returns the number of lexical errors reported so far.
func (l *Lexer) ErrorCount() int {
	return l.errors
}

// Scan scans and returns the next token. Illegal characters are reported
// to the error handler and skipped, so Scan never returns ILLEGAL.
func (l *Lexer) Scan() Token {
	for {
		tok, ok := l.scan()
		if ok {
			return tok
		}
	}
}

func (l *Lexer) errorf(pos token.Position, code int, format string, args ...any) {
	l.errors++
	if l.onError != nil {
		l.onError(pos, code, fmt.Sprintf(format, args...))
	}
}

// scan returns the next token, or ok=false when input was skipped.
func (l *Lexer) scan() (tok Token, ok bool) {
	l.skipWhitespace()

	// Record position
	pos := l.pos

	// EOF
	if l.ch == 0 && l.offset >= len(l.src) {
		return Token{Type: token.EOF, Pos: l.eofPos(), Value: "<EOF>"}, true
	}

	switch l.ch {
	case '/':
		if l.peek() == '/' {
			l.skipLineComment()
			return Token{}, false
		}
		if l.peek() == '*' {
			l.skipBlockComment(pos)
			return Token{}, false
		}
		return l.operator(pos, token.DIV, token.DIV_ASSIGN), true

	case '+':
		l.next()
		if l.ch == '+' {
			l.next()
			return Token{Type: token.INCREMENT, Pos: pos, Value: "++"}, true
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.PLUS_ASSIGN, Pos: pos, Value: "+="}, true
		}
		return Token{Type: token.PLUS, Pos: pos, Value: "+"}, true

	case '-':
		l.next()
		if l.ch == '-' {
			l.next()
			return Token{Type: token.DECREMENT, Pos: pos, Value: "--"}, true
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.MINUS_ASSIGN, Pos: pos, Value: "-="}, true
		}
		return Token{Type: token.MINUS, Pos: pos, Value: "-"}, true

	case '*':
		return l.operator(pos, token.MULT, token.MULT_ASSIGN), true
	case '%':
		return l.operator(pos, token.MOD, token.MOD_ASSIGN), true
	case '=':
		return l.operator(pos, token.ASSIGN, token.EQ), true
	case '!':
		return l.operator(pos, token.NOT, token.NEQ), true
	case '<':
		return l.operator(pos, token.LT, token.LE), true
	case '>':
		return l.operator(pos, token.GT, token.GE), true

	case '&':
		l.next()
		if l.ch == '&' {
			l.next()
			return Token{Type: token.AND, Pos: pos, Value: "&&"}, true
		}
		l.errorf(pos, '&', "illegal character '&'")
		return Token{}, false

	case '|':
		l.next()
		if l.ch == '|' {
			l.next()
			return Token{Type: token.OR, Pos: pos, Value: "||"}, true
		}
		l.errorf(pos, '|', "illegal character '|'")
		return Token{}, false

	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}, true
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}, true
	case '{':
		l.next()
		return Token{Type: token.LBRACE, Pos: pos, Value: "{"}, true
	case '}':
		l.next()
		return Token{Type: token.RBRACE, Pos: pos, Value: "}"}, true
	case ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos, Value: ","}, true
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}, true

	case '"':
		return l.scanString(pos), true

	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peek())) {
			return l.scanNumber(pos), true
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(pos), true
		}
		ch := l.ch
		l.next()
		if ch >= utf8.RuneSelf {
			r, _ := utf8.DecodeRune(l.src[pos.Offset:])
			l.errorf(pos, int(r), "illegal character '%c'", r)
		} else {
			l.errorf(pos, int(ch), "illegal character '%c'", ch)
		}
		return Token{}, false
	}
}

// operator scans a one-character operator that becomes two characters
// when followed by '='.
func (l *Lexer) operator(pos token.Position, single, withEq token.Token) Token {
	ch := l.ch
	l.next()
	if l.ch == '=' {
		l.next()
		return Token{Type: withEq, Pos: pos, Value: string([]byte{ch, '='})}
	}
	return Token{Type: single, Pos: pos, Value: string(ch)}
}

func (l *Lexer) scanString(pos token.Position) Token {
	start := pos.Offset
	l.next() // consume opening quote

	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' {
			l.next() // skip escaped character
			if l.ch == 0 || l.ch == '\n' {
				break
			}
		}
		l.next()
	}

	if l.ch != '"' {
		l.errorf(pos, '"', "unterminated string literal")
		return Token{Type: token.STRING_LITERAL, Pos: pos, Value: string(l.src[start:l.endOffset()])}
	}
	l.next() // consume closing quote

	return Token{Type: token.STRING_LITERAL, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset // Use position offset to include first character
	typ := token.INTEGER_LITERAL

	for isDigit(l.ch) {
		l.next()
	}
	if l.ch == '.' {
		typ = token.FLOAT_LITERAL
		l.next()
		for isDigit(l.ch) {
			l.next()
		}
	}
	// Check for exponent: only consume e/E if followed by digit or +/- then digit
	if (l.ch == 'e' || l.ch == 'E') && l.hasValidExponent() {
		typ = token.FLOAT_LITERAL
		l.next() // consume e/E
		if l.ch == '+' || l.ch == '-' {
			l.next()
		}
		for isDigit(l.ch) {
			l.next()
		}
	}

	return Token{Type: typ, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset // Use position offset to include first character
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.ch == 0 && l.offset >= len(l.src) {
		return len(l.src)
	}
	return l.pos.Offset
}

// eofPos returns the position just past the last character.
func (l *Lexer) eofPos() token.Position {
	if len(l.src) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return l.nextPos
}

// hasValidExponent checks if current e/E is followed by a valid exponent.
func (l *Lexer) hasValidExponent() bool {
	idx := l.offset // Next char position (after e/E)
	if idx >= len(l.src) {
		return false
	}

	ch := l.src[idx]
	if isDigit(ch) {
		return true
	}
	if ch == '+' || ch == '-' {
		idx++
		if idx < len(l.src) && isDigit(l.src[idx]) {
			return true
		}
	}
	return false
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' || l.ch == '\f' {
		l.next()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.next()
	}
}

func (l *Lexer) skipBlockComment(pos token.Position) {
	l.next() // /
	l.next() // *
	for {
		if l.ch == 0 && l.offset >= len(l.src) {
			l.errorf(pos, 0, "unterminated block comment")
			return
		}
		if l.ch == '*' && l.peek() == '/' {
			l.next()
			l.next()
			return
		}
		l.next()
	}
}

// peek returns the character after the current one without consuming it.
func (l *Lexer) peek() byte {
	if l.offset < len(l.src) {
		return l.src[l.offset]
	}
	return 0
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		l.pos = l.nextPos
		return
	}

	l.pos = l.nextPos

	// Multi-byte runes are consumed whole and surface as a single
	// non-ASCII byte, which no token accepts.
	if l.src[l.offset] >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(l.src[l.offset:])
		l.ch = l.src[l.offset]
		l.offset += size
		l.nextPos.Column += size
		l.nextPos.Offset = l.offset
		return
	}

	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
