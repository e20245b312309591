package ast

import "github.com/kolkov/minilang/internal/token"

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// VarDecl represents a variable declaration.
// Examples:
//   - int x;
//   - double rate = 0.5;
//   - string name = "mini";
type VarDecl struct {
	BaseStmt
	Type    string         // Declared type keyword
	Name    string         // Variable name
	NamePos token.Position // Name position for error messages
	Init    Expr           // Initializer (nil if absent)
}

// LocalDecl wraps a declaration that is not itself a statement,
// such as the initializer clause of a for loop.
type LocalDecl struct {
	BaseStmt
	Decl *VarDecl
}

// -----------------------------------------------------------------------------
// Simple statements
// -----------------------------------------------------------------------------

// AssignStmt represents an assignment.
// Examples: x = 1, total += x
type AssignStmt struct {
	BaseStmt
	Name    string
	NamePos token.Position
	Op      token.Token // ASSIGN or a compound assignment operator
	Value   Expr
}

// ExprStmt represents an expression used as a statement.
// Examples: count++, log(x)
type ExprStmt struct {
	BaseStmt
	Expr Expr
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	BaseStmt
	Value Expr // nil for a bare return
}

// EmptyStmt represents a lone semicolon.
type EmptyStmt struct {
	BaseStmt
}

// Block represents a block of statements.
// Example: { stmt1; stmt2; }
type Block struct {
	BaseStmt
	Stmts []Stmt // Statements in the block (may be empty)
}

// -----------------------------------------------------------------------------
// Control structures
// -----------------------------------------------------------------------------

// IfStmt represents an if or if-else statement.
// Examples:
//   - if (cond) { ... }
//   - if (cond) { ... } else { ... }
//   - if (cond) { ... } else if (cond2) { ... }
type IfStmt struct {
	BaseStmt
	Cond Expr
	Then *Block
	Else Stmt // nil, *Block or *IfStmt
}

// WhileStmt represents a while loop.
type WhileStmt struct {
	BaseStmt
	Cond Expr
	Body *Block
}

// ForStmt represents a C-style for loop.
// Example: for (int i = 0; i < n; i++) { ... }
type ForStmt struct {
	BaseStmt
	Init Stmt // nil, *LocalDecl or *AssignStmt
	Cond Expr // may be nil
	Post Stmt // nil, *AssignStmt or *ExprStmt
	Body *Block
}

func (s *IfStmt) Kind() string    { return "If" }
func (s *WhileStmt) Kind() string { return "While" }
func (s *ForStmt) Kind() string   { return "For" }

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt    = (*VarDecl)(nil)
	_ Stmt    = (*LocalDecl)(nil)
	_ Stmt    = (*AssignStmt)(nil)
	_ Stmt    = (*ExprStmt)(nil)
	_ Stmt    = (*ReturnStmt)(nil)
	_ Stmt    = (*EmptyStmt)(nil)
	_ Stmt    = (*Block)(nil)
	_ Control = (*IfStmt)(nil)
	_ Control = (*WhileStmt)(nil)
	_ Control = (*ForStmt)(nil)
)
