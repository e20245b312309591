// Package token defines lexical tokens for MiniLang.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF

	// Literals
	literalStart
	IDENTIFIER
	INTEGER_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	literalEnd

	// Operators and delimiters
	operatorStart
	PLUS
	MINUS
	MULT
	DIV
	MOD
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	MULT_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN
	EQ
	NEQ
	LT
	LE
	GT
	GE
	AND
	OR
	NOT
	INCREMENT
	DECREMENT
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	SEMICOLON
	operatorEnd

	// Keywords
	keywordStart
	KEYWORD // type keyword: int, float, double, string, void, bool
	IF
	ELSE
	WHILE
	FOR
	RETURN
	keywordEnd
)

// names is the token vocabulary: symbolic name per token code.
var names = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENTIFIER:      "IDENTIFIER",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	FLOAT_LITERAL:   "FLOAT_LITERAL",
	STRING_LITERAL:  "STRING_LITERAL",

	PLUS:         "PLUS",
	MINUS:        "MINUS",
	MULT:         "MULT",
	DIV:          "DIV",
	MOD:          "MOD",
	ASSIGN:       "ASSIGN",
	PLUS_ASSIGN:  "PLUS_ASSIGN",
	MINUS_ASSIGN: "MINUS_ASSIGN",
	MULT_ASSIGN:  "MULT_ASSIGN",
	DIV_ASSIGN:   "DIV_ASSIGN",
	MOD_ASSIGN:   "MOD_ASSIGN",
	EQ:           "EQ",
	NEQ:          "NEQ",
	LT:           "LT",
	LE:           "LE",
	GT:           "GT",
	GE:           "GE",
	AND:          "AND",
	OR:           "OR",
	NOT:          "NOT",
	INCREMENT:    "INCREMENT",
	DECREMENT:    "DECREMENT",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	COMMA:        "COMMA",
	SEMICOLON:    "SEMICOLON",

	KEYWORD: "KEYWORD",
	IF:      "IF",
	ELSE:    "ELSE",
	WHILE:   "WHILE",
	FOR:     "FOR",
	RETURN:  "RETURN",
}

// literals holds the fixed spelling of operator and keyword tokens,
// used in parser messages.
var literals = [...]string{
	PLUS:         "+",
	MINUS:        "-",
	MULT:         "*",
	DIV:          "/",
	MOD:          "%",
	ASSIGN:       "=",
	PLUS_ASSIGN:  "+=",
	MINUS_ASSIGN: "-=",
	MULT_ASSIGN:  "*=",
	DIV_ASSIGN:   "/=",
	MOD_ASSIGN:   "%=",
	EQ:           "==",
	NEQ:          "!=",
	LT:           "<",
	LE:           "<=",
	GT:           ">",
	GE:           ">=",
	AND:          "&&",
	OR:           "||",
	NOT:          "!",
	INCREMENT:    "++",
	DECREMENT:    "--",
	LPAREN:       "(",
	RPAREN:       ")",
	LBRACE:       "{",
	RBRACE:       "}",
	COMMA:        ",",
	SEMICOLON:    ";",
	IF:           "if",
	ELSE:         "else",
	WHILE:        "while",
	FOR:          "for",
	RETURN:       "return",
}

// String returns the symbolic name of the token.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "ILLEGAL"
}

// Literal returns the fixed spelling of an operator or keyword token,
// or its symbolic name for tokens without one.
func (t Token) Literal() string {
	if int(t) < len(literals) && literals[t] != "" {
		return literals[t]
	}
	return t.String()
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token is an identifier or literal.
func (t Token) IsLiteral() bool {
	return t > literalStart && t < literalEnd
}

// IsAssign returns true for = and the compound assignment operators.
func (t Token) IsAssign() bool {
	return t >= ASSIGN && t <= MOD_ASSIGN
}

// SymbolicName maps an integer token code to its symbolic name.
// Returns the empty string for codes outside the vocabulary.
func SymbolicName(code int) string {
	if code < 0 || code >= len(names) {
		return ""
	}
	return names[code]
}

// typeKeywords are the type names scanned as KEYWORD.
var typeKeywords = map[string]bool{
	"int":    true,
	"float":  true,
	"double": true,
	"string": true,
	"void":   true,
	"bool":   true,
}

// keywords maps statement keyword strings to their token types.
var keywords = map[string]Token{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"return": RETURN,
}

// LookupIdent returns the token type for a given identifier.
// Returns KEYWORD for type names, a statement keyword token if found,
// otherwise IDENTIFIER.
func LookupIdent(ident string) Token {
	if typeKeywords[ident] {
		return KEYWORD
	}
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

// IsTypeName reports whether name is a MiniLang type keyword.
func IsTypeName(name string) bool {
	return typeKeywords[name]
}
