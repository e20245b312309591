package lexer

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/kolkov/minilang/internal/token"
)

func types(src string) []token.Token {
	var out []token.Token
	for _, tok := range Tokenize([]byte(src), nil) {
		out = append(out, tok.Type)
	}
	return out
}

func TestScanBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"+", []token.Token{token.PLUS, token.EOF}},
		{"-", []token.Token{token.MINUS, token.EOF}},
		{"*", []token.Token{token.MULT, token.EOF}},
		{"/", []token.Token{token.DIV, token.EOF}},
		{"%", []token.Token{token.MOD, token.EOF}},
		{"++", []token.Token{token.INCREMENT, token.EOF}},
		{"--", []token.Token{token.DECREMENT, token.EOF}},
		{"+=", []token.Token{token.PLUS_ASSIGN, token.EOF}},
		{"-=", []token.Token{token.MINUS_ASSIGN, token.EOF}},
		{"*=", []token.Token{token.MULT_ASSIGN, token.EOF}},
		{"/=", []token.Token{token.DIV_ASSIGN, token.EOF}},
		{"%=", []token.Token{token.MOD_ASSIGN, token.EOF}},
		{"=", []token.Token{token.ASSIGN, token.EOF}},
		{"==", []token.Token{token.EQ, token.EOF}},
		{"!=", []token.Token{token.NEQ, token.EOF}},
		{"!", []token.Token{token.NOT, token.EOF}},
		{"<", []token.Token{token.LT, token.EOF}},
		{"<=", []token.Token{token.LE, token.EOF}},
		{">", []token.Token{token.GT, token.EOF}},
		{">=", []token.Token{token.GE, token.EOF}},
		{"&&", []token.Token{token.AND, token.EOF}},
		{"||", []token.Token{token.OR, token.EOF}},
		{"(", []token.Token{token.LPAREN, token.EOF}},
		{")", []token.Token{token.RPAREN, token.EOF}},
		{"{", []token.Token{token.LBRACE, token.EOF}},
		{"}", []token.Token{token.RBRACE, token.EOF}},
		{",", []token.Token{token.COMMA, token.EOF}},
		{";", []token.Token{token.SEMICOLON, token.EOF}},
		{"", []token.Token{token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := deep.Equal(types(tt.input), tt.expected); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestScanDeclaration(t *testing.T) {
	toks := Tokenize([]byte(`int x = 42;`), nil)
	want := []Token{
		{Type: token.KEYWORD, Pos: token.Position{Line: 1, Column: 1, Offset: 0}, Value: "int"},
		{Type: token.IDENTIFIER, Pos: token.Position{Line: 1, Column: 5, Offset: 4}, Value: "x"},
		{Type: token.ASSIGN, Pos: token.Position{Line: 1, Column: 7, Offset: 6}, Value: "="},
		{Type: token.INTEGER_LITERAL, Pos: token.Position{Line: 1, Column: 9, Offset: 8}, Value: "42"},
		{Type: token.SEMICOLON, Pos: token.Position{Line: 1, Column: 11, Offset: 10}, Value: ";"},
		{Type: token.EOF, Pos: token.Position{Line: 1, Column: 12, Offset: 11}, Value: "<EOF>"},
	}
	if diff := deep.Equal(toks, want); diff != nil {
		t.Error(diff)
	}
}

func TestScanLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Token
		value string
	}{
		{"0", token.INTEGER_LITERAL, "0"},
		{"123", token.INTEGER_LITERAL, "123"},
		{"3.14", token.FLOAT_LITERAL, "3.14"},
		{".5", token.FLOAT_LITERAL, ".5"},
		{"1e10", token.FLOAT_LITERAL, "1e10"},
		{"2.5E-3", token.FLOAT_LITERAL, "2.5E-3"},
		{`"hello"`, token.STRING_LITERAL, `"hello"`},
		{`"a \"quoted\" word"`, token.STRING_LITERAL, `"a \"quoted\" word"`},
		{`"tab\t"`, token.STRING_LITERAL, `"tab\t"`},
		{"name_1", token.IDENTIFIER, "name_1"},
		{"_x", token.IDENTIFIER, "_x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewFromString(tt.input, nil).Scan()
			if tok.Type != tt.typ {
				t.Errorf("type = %v, want %v", tok.Type, tt.typ)
			}
			if tok.Value != tt.value {
				t.Errorf("value = %q, want %q", tok.Value, tt.value)
			}
		})
	}
}

func TestScanExponentNeedsDigits(t *testing.T) {
	want := []token.Token{token.INTEGER_LITERAL, token.IDENTIFIER, token.PLUS, token.IDENTIFIER, token.EOF}
	if diff := deep.Equal(types("1e+a"), want); diff != nil {
		t.Error(diff)
	}
}

func TestScanKeywords(t *testing.T) {
	want := []token.Token{
		token.KEYWORD, token.KEYWORD, token.KEYWORD, token.KEYWORD,
		token.IF, token.ELSE, token.WHILE, token.FOR, token.RETURN,
		token.IDENTIFIER, token.EOF,
	}
	if diff := deep.Equal(types("int double string void if else while for return main"), want); diff != nil {
		t.Error(diff)
	}
}

func TestScanComments(t *testing.T) {
	src := "int a; // trailing\n/* block\ncomment */ int b;"
	toks := Tokenize([]byte(src), nil)
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Value)
	}
	want := []string{"int", "a", ";", "int", "b", ";", "<EOF>"}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
	if toks[3].Pos.Line != 3 {
		t.Errorf("second declaration on line %d, want 3", toks[3].Pos.Line)
	}
}

func TestScanLineTracking(t *testing.T) {
	toks := Tokenize([]byte("int a;\n\nint b;\n"), nil)
	lines := []int{}
	for _, tok := range toks {
		lines = append(lines, tok.Pos.Line)
	}
	want := []int{1, 1, 1, 3, 3, 3, 4}
	if diff := deep.Equal(lines, want); diff != nil {
		t.Error(diff)
	}
}

type lexError struct {
	Line, Col, Code int
	Msg             string
}

func collect(src string) ([]Token, []lexError) {
	var errs []lexError
	toks := Tokenize([]byte(src), func(pos token.Position, code int, msg string) {
		errs = append(errs, lexError{pos.Line, pos.Column, code, msg})
	})
	return toks, errs
}

func TestIllegalCharacters(t *testing.T) {
	toks, errs := collect("int a @ = 1 # 2;")
	want := []lexError{
		{1, 7, '@', "illegal character '@'"},
		{1, 13, '#', "illegal character '#'"},
	}
	if diff := deep.Equal(errs, want); diff != nil {
		t.Error(diff)
	}
	// Illegal characters are skipped, the rest of the stream survives.
	if len(toks) != 7 {
		t.Errorf("got %d tokens, want 7: %v", len(toks), toks)
	}
}

func TestSingleAmpersandAndPipe(t *testing.T) {
	_, errs := collect("a & b | c")
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Msg != "illegal character '&'" || errs[1].Msg != "illegal character '|'" {
		t.Errorf("unexpected messages: %v", errs)
	}
}

func TestUnterminated(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"string", "string s = \"abc\nint x;", "unterminated string literal"},
		{"string at eof", `"abc`, "unterminated string literal"},
		{"block comment", "int a; /* never closed", "unterminated block comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := collect(tt.src)
			if len(errs) != 1 || errs[0].Msg != tt.msg {
				t.Errorf("errors = %v, want one %q", errs, tt.msg)
			}
		})
	}
}

func TestUnterminatedStringKeepsPartialLexeme(t *testing.T) {
	toks, _ := collect("\"abc\nx")
	if toks[0].Type != token.STRING_LITERAL || toks[0].Value != `"abc` {
		t.Errorf("first token = %v, want partial string", toks[0])
	}
	if toks[1].Type != token.IDENTIFIER || toks[1].Pos.Line != 2 {
		t.Errorf("second token = %v, want identifier on line 2", toks[1])
	}
}

func TestNonASCIIIsIllegal(t *testing.T) {
	toks, errs := collect("int é = 1;")
	if len(errs) != 1 || errs[0].Code != 'é' {
		t.Fatalf("errors = %v, want one for 'é'", errs)
	}
	if errs[0].Msg != "illegal character 'é'" {
		t.Errorf("msg = %q", errs[0].Msg)
	}
	if len(toks) != 5 {
		t.Errorf("got %d tokens, want 5", len(toks))
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: token.IDENTIFIER, Pos: token.Position{Line: 7, Column: 3}, Value: "count"}
	if got := tok.String(); got != "<IDENTIFIER, count, 7>" {
		t.Errorf("String() = %q", got)
	}
}

func TestErrorCount(t *testing.T) {
	l := NewFromString("$ $ x", nil)
	for l.Scan().Type != token.EOF {
	}
	if l.ErrorCount() != 2 {
		t.Errorf("ErrorCount() = %d, want 2", l.ErrorCount())
	}
}
