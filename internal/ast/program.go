package ast

import (
	"strings"

	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/token"
)

// Program represents a complete MiniLang source file.
// Items appear in source order and are *GlobalDecl, *FuncDecl or a Stmt.
type Program struct {
	Items []Node

	// Stream is the full token stream the tree was built from,
	// terminated by EOF. Node token ranges index into it.
	Stream []lexer.Token

	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position of the EOF token.
func (p *Program) End() token.Position { return p.EndPos }

// Tokens returns the full token range, EOF excluded.
func (p *Program) Tokens() (first, last int) { return 0, len(p.Stream) - 2 }

// Text returns the verbatim text of n: the lexemes of the tokens it spans,
// concatenated without separators. EOF contributes nothing.
func (p *Program) Text(n Node) string {
	if n == nil {
		return ""
	}
	first, last := n.Tokens()
	return Text(p.Stream, first, last)
}

// Text concatenates the lexemes of toks[first..last].
func Text(toks []lexer.Token, first, last int) string {
	if first < 0 {
		first = 0
	}
	if last >= len(toks) {
		last = len(toks) - 1
	}
	var sb strings.Builder
	for i := first; i <= last; i++ {
		if toks[i].Type == token.EOF {
			continue
		}
		sb.WriteString(toks[i].Value)
	}
	return sb.String()
}

// GlobalDecl wraps a variable declaration made at program level.
type GlobalDecl struct {
	BaseDecl
	Decl *VarDecl
}

// FuncDecl represents a function declaration.
// Example: int add(int a, int b) { return a + b; }
type FuncDecl struct {
	BaseDecl

	ReturnType string         // Return type keyword
	Name       string         // Function name
	NamePos    token.Position // Name position for error messages
	Params     *ParamList     // nil when the parentheses are empty
	Body       *Block         // Function body (nil after unrecoverable errors)
}

// ParamList represents the parameters between a function's parentheses.
type ParamList struct {
	BaseDecl
	List []*Param
}

// Param represents a single typed parameter.
type Param struct {
	BaseDecl
	Type    string
	Name    string
	NamePos token.Position
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Node = (*Program)(nil)
	_ Decl = (*GlobalDecl)(nil)
	_ Decl = (*FuncDecl)(nil)
	_ Decl = (*ParamList)(nil)
	_ Decl = (*Param)(nil)
)
