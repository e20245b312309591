package ast

import (
	"fmt"
	"io"
)

// Printer writes an indented outline of a tree, one node per line.
// It is used for debugging the parser.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the outline of node and its descendants.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "  ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil || isNilNode(node) {
		return
	}
	p.writeIndent()
	p.printf("%s @%s\n", Label(node), node.Pos())

	p.indent++
	for _, c := range Children(node) {
		p.printNode(c)
	}
	p.indent--
}

// Label returns a short description of a node: its kind followed by the
// identifying fields of that kind.
func Label(node Node) string {
	switch n := node.(type) {
	case *Program:
		return fmt.Sprintf("Program (%d items)", len(n.Items))
	case *GlobalDecl:
		return "GlobalDecl"
	case *FuncDecl:
		return fmt.Sprintf("FuncDecl %s %s", n.ReturnType, n.Name)
	case *ParamList:
		return fmt.Sprintf("ParamList (%d)", len(n.List))
	case *Param:
		return fmt.Sprintf("Param %s %s", n.Type, n.Name)

	case *VarDecl:
		return fmt.Sprintf("VarDecl %s %s", n.Type, n.Name)
	case *LocalDecl:
		return "LocalDecl"
	case *AssignStmt:
		return fmt.Sprintf("AssignStmt %s %s", n.Name, n.Op.Literal())
	case *ExprStmt:
		return "ExprStmt"
	case *ReturnStmt:
		return "ReturnStmt"
	case *EmptyStmt:
		return "EmptyStmt"
	case *Block:
		return fmt.Sprintf("Block (%d stmts)", len(n.Stmts))
	case *IfStmt:
		return "IfStmt"
	case *WhileStmt:
		return "WhileStmt"
	case *ForStmt:
		return "ForStmt"

	case *IntLit:
		return "IntLit " + n.Value
	case *FloatLit:
		return "FloatLit " + n.Value
	case *StrLit:
		return "StrLit " + n.Value
	case *Ident:
		return "Ident " + n.Name
	case *CallExpr:
		return fmt.Sprintf("CallExpr %s (%d args)", n.Name, len(n.Args))
	case *BinaryExpr:
		return "BinaryExpr " + n.Op.Literal()
	case *UnaryExpr:
		return "UnaryExpr " + n.Op.Literal()
	case *PostfixExpr:
		return "PostfixExpr " + n.Op.Literal()
	case *GroupExpr:
		return "GroupExpr"
	case *BadExpr:
		return "BadExpr"
	default:
		return fmt.Sprintf("<%T>", node)
	}
}
