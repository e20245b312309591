package ast

import "github.com/kolkov/minilang/internal/token"

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// IntLit represents an integer literal. Value is the source spelling.
type IntLit struct {
	BaseExpr
	Value string
}

// FloatLit represents a floating-point literal.
// Examples: 3.14, .5, 1e10
type FloatLit struct {
	BaseExpr
	Value string
}

// StrLit represents a string literal. Value keeps the quotes and
// escape sequences exactly as written.
type StrLit struct {
	BaseExpr
	Value string
}

// -----------------------------------------------------------------------------
// References and calls
// -----------------------------------------------------------------------------

// Ident represents a variable reference.
type Ident struct {
	BaseExpr
	Name string
}

// CallExpr represents a function call.
// Example: add(1, x)
type CallExpr struct {
	BaseExpr
	Name    string
	NamePos token.Position
	Args    []Expr
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr represents a binary operation.
// Examples: a + b, x <= y, ok && done
type BinaryExpr struct {
	BaseExpr
	Left  Expr
	Op    token.Token
	Right Expr
}

// UnaryExpr represents a prefix operation: -x, +x, !x.
type UnaryExpr struct {
	BaseExpr
	Op   token.Token
	Expr Expr
}

// PostfixExpr represents x++ or x--.
type PostfixExpr struct {
	BaseExpr
	Expr Expr
	Op   token.Token
}

// GroupExpr represents a parenthesized expression.
type GroupExpr struct {
	BaseExpr
	Expr Expr
}

// BadExpr stands in for an expression that failed to parse.
type BadExpr struct {
	BaseExpr
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*FloatLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*PostfixExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
	_ Expr = (*BadExpr)(nil)
)
