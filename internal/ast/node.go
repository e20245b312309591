// Package ast defines the parse tree for MiniLang programs.
//
// Every node records the range of tokens it was built from, so the
// verbatim text of any construct can be recovered with [Program.Text].
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── IntLit, FloatLit, StrLit - literals
//	│   ├── Ident, CallExpr - references and calls
//	│   ├── BinaryExpr, UnaryExpr, PostfixExpr, GroupExpr - operations
//	│   └── BadExpr - placeholder produced by error recovery
//	├── Stmt (interface) - statements
//	│   ├── VarDecl, LocalDecl - declarations
//	│   ├── AssignStmt, ExprStmt, ReturnStmt, EmptyStmt - simple
//	│   ├── IfStmt, WhileStmt, ForStmt - control structures
//	│   └── Block - compound
//	└── Program, GlobalDecl, FuncDecl, ParamList, Param - top-level structures
package ast

import "github.com/kolkov/minilang/internal/token"

// Node is the interface implemented by all parse tree nodes.
type Node interface {
	// Pos returns the position of the first token belonging to this node.
	Pos() token.Position

	// End returns the position of the last token belonging to this node.
	End() token.Position

	// Tokens returns the inclusive token index range of this node.
	// last < first for a node that consumed no tokens.
	Tokens() (first, last int)
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	declNode() // marker method to prevent external implementations
}

// Control is implemented by the control-structure statements:
// *IfStmt, *WhileStmt and *ForStmt.
type Control interface {
	Stmt
	// Kind returns "If", "While" or "For".
	Kind() string
}

// Span holds the source extent shared by all nodes.
type Span struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position of last token
	First    int            // Index of first token
	Last     int            // Index of last token (inclusive)
}

func (s *Span) Pos() token.Position       { return s.StartPos }
func (s *Span) End() token.Position       { return s.EndPos }
func (s *Span) Tokens() (first, last int) { return s.First, s.Last }

// BaseExpr provides common fields for all expression nodes.
type BaseExpr struct{ Span }

func (b *BaseExpr) exprNode() {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct{ Span }

func (b *BaseStmt) stmtNode() {}

// BaseDecl provides common fields for declaration nodes.
type BaseDecl struct{ Span }

func (b *BaseDecl) declNode() {}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeSpan creates a Span covering tokens first through last.
func MakeSpan(first, last int, start, end token.Position) Span {
	return Span{StartPos: start, EndPos: end, First: first, Last: last}
}

// MakeBaseExpr creates a BaseExpr from a span.
func MakeBaseExpr(s Span) BaseExpr {
	return BaseExpr{Span: s}
}

// MakeBaseStmt creates a BaseStmt from a span.
func MakeBaseStmt(s Span) BaseStmt {
	return BaseStmt{Span: s}
}

// MakeBaseDecl creates a BaseDecl from a span.
func MakeBaseDecl(s Span) BaseDecl {
	return BaseDecl{Span: s}
}
