package parser

import (
	"github.com/kolkov/minilang/internal/ast"
	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/token"
)

// ErrorListener receives syntax errors as the parser detects them.
type ErrorListener interface {
	SyntaxError(offending lexer.Token, line, charPos int, msg string)
}

// Config wires the parser's two error channels.
type Config struct {
	// LexErrors receives lexical errors from the scanner (may be nil).
	LexErrors lexer.ErrorHandler

	// Listener receives syntax errors (may be nil).
	Listener ErrorListener
}

// Parser is a recursive descent parser for MiniLang programs.
type Parser struct {
	toks   []lexer.Token // Full token stream, EOF terminated
	idx    int           // Index of current token
	errors ErrorList     // Accumulated errors

	listener ErrorListener
	lastErr  int // token index of the last reported error, -1 if none
}

// Parse parses a MiniLang program from source code.
//
// Parsing never stops at the first error: the returned tree is always
// non-nil and covers whatever could be recovered. The error, when
// non-nil, is an ErrorList of every syntax error in source order.
func Parse(src string) (*ast.Program, error) {
	return ParseBytes([]byte(src), Config{})
}

// ParseBytes parses a MiniLang program from a byte slice, reporting
// errors through cfg as they occur.
func ParseBytes(src []byte, cfg Config) (*ast.Program, error) {
	p := &Parser{
		toks:     lexer.Tokenize(src, cfg.LexErrors),
		listener: cfg.Listener,
		lastErr:  -1,
	}

	prog := p.parseProgram()

	return prog, p.errors.Err()
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	p := &Parser{
		toks:    lexer.Tokenize([]byte(src), nil),
		lastErr: -1,
	}

	expr := p.parseExpr()
	if p.tok().Type != token.EOF {
		p.error(extraneousError(p.tok()))
	}

	return expr, p.errors.Err()
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// tok returns the current token.
func (p *Parser) tok() lexer.Token {
	return p.toks[p.idx]
}

// peek returns the token n positions ahead, clamped to EOF.
func (p *Parser) peek(n int) lexer.Token {
	if p.idx+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.idx+n]
}

// next advances to the next token. EOF is never passed.
func (p *Parser) next() {
	if p.toks[p.idx].Type != token.EOF {
		p.idx++
	}
}

// at reports whether the current token has type t.
func (p *Parser) at(t token.Token) bool {
	return p.tok().Type == t
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	for _, t := range types {
		if p.tok().Type == t {
			return true
		}
	}
	return false
}

// expect checks that the current token is tok and advances.
// If not, it records an error and leaves the token in place.
func (p *Parser) expect(tok token.Token) bool {
	if p.tok().Type != tok {
		want := tok.String()
		if tok.IsOperator() || tok.IsKeyword() && tok != token.KEYWORD {
			want = "'" + tok.Literal() + "'"
		}
		if p.startsStmt() || p.match(token.RBRACE, token.EOF) {
			p.error(missingError(p.tok(), want))
		} else {
			p.error(mismatchedError(p.tok(), want))
		}
		return false
	}
	p.next()
	return true
}

// expectIdent expects an IDENTIFIER and returns its name and position.
func (p *Parser) expectIdent() (string, token.Position) {
	tok := p.tok()
	if !p.expect(token.IDENTIFIER) {
		return "", tok.Pos
	}
	return tok.Value, tok.Pos
}

// expectSemi expects a statement terminator and resynchronizes on failure.
func (p *Parser) expectSemi() {
	if !p.expect(token.SEMICOLON) {
		p.sync()
	}
}

// error records a parse error and forwards it to the listener. Only the
// first error at a given token is kept, which suppresses cascades.
func (p *Parser) error(err *ParseError) {
	if p.lastErr == p.idx {
		return
	}
	p.lastErr = p.idx
	p.errors = append(p.errors, err)
	if p.listener != nil {
		p.listener.SyntaxError(err.Got, err.Pos.Line, err.Pos.CharPos(), err.Message)
	}
}

// startsStmt reports whether the current token can begin a statement
// other than an expression statement.
func (p *Parser) startsStmt() bool {
	return p.match(token.KEYWORD, token.IF, token.WHILE, token.FOR, token.RETURN, token.LBRACE)
}

// sync skips tokens until a likely statement boundary: a consumed ';',
// or a '}', a statement keyword or EOF left in place.
func (p *Parser) sync() {
	for !p.at(token.EOF) {
		if p.at(token.SEMICOLON) {
			p.next()
			return
		}
		if p.at(token.RBRACE) || p.startsStmt() {
			return
		}
		p.next()
	}
}

// span returns the span from token first up to the last consumed token.
func (p *Parser) span(first int) ast.Span {
	last := p.idx - 1
	start := p.toks[first].Pos
	if last < first {
		return ast.MakeSpan(first, last, start, start)
	}
	return ast.MakeSpan(first, last, start, p.toks[last].Pos)
}

// -----------------------------------------------------------------------------
// Program parsing
// -----------------------------------------------------------------------------

// parseProgram parses a complete program.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{
		Stream:   p.toks,
		StartPos: p.tok().Pos,
	}

	for !p.at(token.EOF) {
		start := p.idx

		switch {
		case p.at(token.KEYWORD) && p.peek(1).Type == token.IDENTIFIER && p.peek(2).Type == token.LPAREN:
			if fn := p.parseFunction(); fn != nil {
				prog.Items = append(prog.Items, fn)
			}

		case p.at(token.KEYWORD):
			decl := p.parseVarDecl(true)
			prog.Items = append(prog.Items, &ast.GlobalDecl{
				BaseDecl: ast.MakeBaseDecl(p.span(start)),
				Decl:     decl,
			})

		default:
			if stmt := p.parseStmt(); stmt != nil {
				prog.Items = append(prog.Items, stmt)
			}
		}

		// Always make progress
		if p.idx == start {
			p.error(extraneousError(p.tok()))
			p.next()
		}
	}

	prog.EndPos = p.tok().Pos
	return prog
}

// parseFunction parses a function declaration.
func (p *Parser) parseFunction() *ast.FuncDecl {
	start := p.idx
	returnType := p.tok().Value
	p.next() // type keyword

	name, namePos := p.expectIdent()
	p.expect(token.LPAREN)

	var params *ast.ParamList
	if !p.match(token.RPAREN, token.LBRACE, token.EOF) {
		params = p.parseParamList()
	}
	p.expect(token.RPAREN)

	body := p.parseBlock()

	return &ast.FuncDecl{
		BaseDecl:   ast.MakeBaseDecl(p.span(start)),
		ReturnType: returnType,
		Name:       name,
		NamePos:    namePos,
		Params:     params,
		Body:       body,
	}
}

// parseParamList parses parameter (',' parameter)*.
func (p *Parser) parseParamList() *ast.ParamList {
	start := p.idx
	list := &ast.ParamList{}

	for {
		pstart := p.idx
		typ := p.tok().Value
		if !p.expect(token.KEYWORD) {
			// Skip to the closing parenthesis
			for !p.match(token.RPAREN, token.LBRACE, token.EOF) {
				p.next()
			}
			break
		}
		name, namePos := p.expectIdent()
		list.List = append(list.List, &ast.Param{
			BaseDecl: ast.MakeBaseDecl(p.span(pstart)),
			Type:     typ,
			Name:     name,
			NamePos:  namePos,
		})
		if !p.at(token.COMMA) {
			break
		}
		p.next()
	}

	list.BaseDecl = ast.MakeBaseDecl(p.span(start))
	return list
}

// parseBlock parses a block { ... }. Returns nil if the opening brace is missing.
func (p *Parser) parseBlock() *ast.Block {
	start := p.idx
	if !p.expect(token.LBRACE) {
		return nil
	}

	var stmts []ast.Stmt
	for !p.match(token.RBRACE, token.EOF) {
		before := p.idx
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.idx == before {
			p.error(extraneousError(p.tok()))
			p.next()
		}
	}
	p.expect(token.RBRACE)

	return &ast.Block{
		BaseStmt: ast.MakeBaseStmt(p.span(start)),
		Stmts:    stmts,
	}
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseStmt parses any statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok().Type {
	case token.KEYWORD:
		return p.parseVarDecl(true)
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		start := p.idx
		p.next()
		return &ast.EmptyStmt{BaseStmt: ast.MakeBaseStmt(p.span(start))}
	case token.RBRACE:
		return nil
	}

	start := p.idx
	stmt := p.parseSimpleStmt()
	if stmt == nil {
		p.sync()
		return nil
	}
	p.expectSemi()
	return p.finish(stmt, start)
}

// parseSimpleStmt parses an assignment or expression statement without
// its terminator. Returns nil if no expression could start here.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	start := p.idx
	if p.at(token.IDENTIFIER) && p.peek(1).Type.IsAssign() {
		return p.parseAssign()
	}

	expr := p.parseExpr()
	if _, bad := expr.(*ast.BadExpr); bad && p.idx == start {
		return nil
	}
	return &ast.ExprStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start)),
		Expr:     expr,
	}
}

// finish extends a statement's span over its terminator.
func (p *Parser) finish(stmt ast.Stmt, start int) ast.Stmt {
	span := p.span(start)
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		s.Span = span
	case *ast.ExprStmt:
		s.Span = span
	}
	return stmt
}

// parseAssign parses IDENTIFIER op expression.
func (p *Parser) parseAssign() *ast.AssignStmt {
	start := p.idx
	name := p.tok().Value
	namePos := p.tok().Pos
	p.next()
	op := p.tok().Type
	p.next()
	value := p.parseExpr()
	return &ast.AssignStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start)),
		Name:     name,
		NamePos:  namePos,
		Op:       op,
		Value:    value,
	}
}

// parseVarDecl parses KEYWORD IDENTIFIER ('=' expression)? and, when
// terminated is set, the closing ';'.
func (p *Parser) parseVarDecl(terminated bool) *ast.VarDecl {
	start := p.idx
	decl := &ast.VarDecl{Type: p.tok().Value}
	p.next() // type keyword

	decl.Name, decl.NamePos = p.expectIdent()
	if decl.Name != "" && p.at(token.ASSIGN) {
		p.next()
		decl.Init = p.parseExpr()
	}
	if terminated {
		p.expectSemi()
	}

	decl.BaseStmt = ast.MakeBaseStmt(p.span(start))
	return decl
}

// parseIfStmt parses if (cond) block [else (block | if ...)].
func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.idx
	p.next() // if

	stmt := &ast.IfStmt{}
	stmt.Cond = p.parseCondition()
	stmt.Then = p.parseBlock()

	if p.at(token.ELSE) {
		p.next()
		if p.at(token.IF) {
			stmt.Else = p.parseIfStmt()
		} else if block := p.parseBlock(); block != nil {
			stmt.Else = block
		}
	}

	stmt.BaseStmt = ast.MakeBaseStmt(p.span(start))
	return stmt
}

// parseWhileStmt parses while (cond) block.
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.idx
	p.next() // while

	stmt := &ast.WhileStmt{}
	stmt.Cond = p.parseCondition()
	stmt.Body = p.parseBlock()

	stmt.BaseStmt = ast.MakeBaseStmt(p.span(start))
	return stmt
}

// parseForStmt parses for (init; cond; post) block.
func (p *Parser) parseForStmt() *ast.ForStmt {
	start := p.idx
	p.next() // for

	stmt := &ast.ForStmt{}
	p.expect(token.LPAREN)

	// Initializer
	if p.at(token.KEYWORD) {
		istart := p.idx
		decl := p.parseVarDecl(false)
		stmt.Init = &ast.LocalDecl{
			BaseStmt: ast.MakeBaseStmt(p.span(istart)),
			Decl:     decl,
		}
	} else if !p.at(token.SEMICOLON) {
		stmt.Init = p.parseSimpleStmt()
	}
	p.expect(token.SEMICOLON)

	// Condition
	if !p.at(token.SEMICOLON) {
		stmt.Cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)

	// Post statement
	if !p.at(token.RPAREN) {
		stmt.Post = p.parseSimpleStmt()
	}
	p.expect(token.RPAREN)

	stmt.Body = p.parseBlock()

	stmt.BaseStmt = ast.MakeBaseStmt(p.span(start))
	return stmt
}

// parseReturnStmt parses return [expression];
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.idx
	p.next() // return

	stmt := &ast.ReturnStmt{}
	if !p.match(token.SEMICOLON, token.RBRACE, token.EOF) {
		stmt.Value = p.parseExpr()
	}
	p.expectSemi()

	stmt.BaseStmt = ast.MakeBaseStmt(p.span(start))
	return stmt
}

// parseCondition parses ( expression ).
func (p *Parser) parseCondition() ast.Expr {
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	return cond
}

// -----------------------------------------------------------------------------
// Expression parsing (precedence climbing, lowest first)
// -----------------------------------------------------------------------------

// parseExpr parses a full expression.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	return p.parseBinaryLeft(p.parseAnd, token.OR)
}

func (p *Parser) parseAnd() ast.Expr {
	return p.parseBinaryLeft(p.parseEquality, token.AND)
}

func (p *Parser) parseEquality() ast.Expr {
	return p.parseBinaryLeft(p.parseRelational, token.EQ, token.NEQ)
}

func (p *Parser) parseRelational() ast.Expr {
	return p.parseBinaryLeft(p.parseAdditive, token.LT, token.LE, token.GT, token.GE)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.parseBinaryLeft(p.parseMultiplicative, token.PLUS, token.MINUS)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.parseBinaryLeft(p.parseUnary, token.MULT, token.DIV, token.MOD)
}

// parseBinaryLeft parses a left-associative chain of the given operators.
func (p *Parser) parseBinaryLeft(higher func() ast.Expr, ops ...token.Token) ast.Expr {
	start := p.idx
	left := higher()
	for p.match(ops...) {
		op := p.tok().Type
		p.next()
		right := higher()
		left = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(p.span(start)),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.match(token.MINUS, token.PLUS, token.NOT) {
		start := p.idx
		op := p.tok().Type
		p.next()
		expr := p.parseUnary()
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(p.span(start)),
			Op:       op,
			Expr:     expr,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	start := p.idx
	expr := p.parsePrimary()
	for p.match(token.INCREMENT, token.DECREMENT) {
		op := p.tok().Type
		p.next()
		expr = &ast.PostfixExpr{
			BaseExpr: ast.MakeBaseExpr(p.span(start)),
			Expr:     expr,
			Op:       op,
		}
	}
	return expr
}

// parsePrimary parses literals, identifiers, calls and parenthesized expressions.
func (p *Parser) parsePrimary() ast.Expr {
	start := p.idx
	tok := p.tok()

	switch tok.Type {
	case token.INTEGER_LITERAL:
		p.next()
		return &ast.IntLit{BaseExpr: ast.MakeBaseExpr(p.span(start)), Value: tok.Value}

	case token.FLOAT_LITERAL:
		p.next()
		return &ast.FloatLit{BaseExpr: ast.MakeBaseExpr(p.span(start)), Value: tok.Value}

	case token.STRING_LITERAL:
		p.next()
		return &ast.StrLit{BaseExpr: ast.MakeBaseExpr(p.span(start)), Value: tok.Value}

	case token.IDENTIFIER:
		p.next()
		if p.at(token.LPAREN) {
			return p.parseCall(start, tok)
		}
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(p.span(start)), Name: tok.Value}

	case token.LPAREN:
		p.next()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.GroupExpr{BaseExpr: ast.MakeBaseExpr(p.span(start)), Expr: inner}
	}

	p.error(noViableError(tok))
	return &ast.BadExpr{BaseExpr: ast.MakeBaseExpr(p.span(start))}
}

// parseCall parses the argument list of a call whose name was just consumed.
func (p *Parser) parseCall(start int, name lexer.Token) *ast.CallExpr {
	p.next() // (

	call := &ast.CallExpr{Name: name.Value, NamePos: name.Pos}
	if !p.at(token.RPAREN) {
		for {
			call.Args = append(call.Args, p.parseExpr())
			if !p.at(token.COMMA) {
				break
			}
			p.next()
		}
	}
	p.expect(token.RPAREN)

	call.BaseExpr = ast.MakeBaseExpr(p.span(start))
	return call
}
