package semantic

import (
	"strings"

	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/token"
)

// Variable is a recorded global or local variable declaration.
type Variable struct {
	Type    string         // Declared type keyword
	Name    string         // Variable name
	Init    string         // Verbatim initializer text
	HasInit bool           // Whether an initializer was given
	Pos     token.Position // Name position
}

// String renders the report line: "type name" or "type name = init".
func (v Variable) String() string {
	if !v.HasInit {
		return v.Type + " " + v.Name
	}
	return v.Type + " " + v.Name + " = " + v.Init
}

// inventory renders the per-function entry, which always has a value.
func (v Variable) inventory() string {
	init := "null"
	if v.HasInit {
		init = v.Init
	}
	return v.Type + " " + v.Name + " = " + init
}

// Param is a single function parameter.
type Param struct {
	Type string
	Name string
	Pos  token.Position
}

// Signature identifies a function by name and typed parameter list.
type Signature struct {
	Name   string
	Params []Param
}

// ParamText renders the parameters as "type name, type name".
func (s Signature) ParamText() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Type + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// Key returns the canonical signature key: name(type name, type name).
func (s Signature) Key() string {
	return s.Name + "(" + s.ParamText() + ")"
}

// callKey builds the key a call site is looked up by.
func callKey(name string, args []string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

// FuncKind classifies a function.
type FuncKind int

const (
	FuncIterative FuncKind = iota // Body never mentions the function's name
	FuncRecursive                 // Body text contains the function's name
	FuncEntry                     // The program entry point
)

// String returns the report name of the classification.
func (k FuncKind) String() string {
	switch k {
	case FuncEntry:
		return "entry"
	case FuncRecursive:
		return "recursive"
	default:
		return "iterative"
	}
}

// Control is one recorded if, while or for statement.
type Control struct {
	Kind string // "If", "While" or "For"
	Text string // Verbatim source text of the whole construct
	Pos  token.Position
}

// String renders the report line, e.g. "If statement: if(x>0){...}".
func (c Control) String() string {
	return c.Kind + " statement: " + c.Text
}

// Function is the report for one function declaration.
type Function struct {
	Name       string
	Kind       FuncKind
	ReturnType string
	Signature  Signature
	Locals     []Variable // Declarations directly in the body
	Controls   []Control  // Control structures directly in the body
	Pos        token.Position
}

// String renders the function block of functions.txt, including its
// trailing separator line.
func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString("Function: " + f.Name + "\n")
	sb.WriteString("Type: " + f.Kind.String() + "\n")
	sb.WriteString("Return Type: " + f.ReturnType + "\n")
	sb.WriteString("Parameters: " + f.Signature.ParamText() + "\n")
	sb.WriteString("Local Variables:\n")
	for _, v := range f.Locals {
		sb.WriteString(v.inventory() + "\n")
	}
	sb.WriteString("\nControl Structures:\n")
	for _, c := range f.Controls {
		sb.WriteString(c.String() + "\n")
	}
	sb.WriteString("\n\n")
	return sb.String()
}

// Report accumulates the results of one analysis pass.
type Report struct {
	Globals   []Variable
	Functions []*Function
	Locals    []Variable
	Controls  []Control

	// Tokens is the transcript of the analyzed token stream.
	Tokens []lexer.Token

	// Errors holds the semantic errors in detection order.
	Errors ErrorList
}

// GlobalVariables returns the globalVariables.txt contents.
func (r *Report) GlobalVariables() string {
	return joinLines(r.Globals)
}

// LocalVariables returns the localVariables.txt contents.
func (r *Report) LocalVariables() string {
	return joinLines(r.Locals)
}

// ControlStructures returns the controlStructures.txt contents.
func (r *Report) ControlStructures() string {
	return joinLines(r.Controls)
}

// FunctionsText returns the functions.txt contents.
func (r *Report) FunctionsText() string {
	return joinLines(r.Functions)
}

// TokenTranscript returns the tokens.txt contents.
func (r *Report) TokenTranscript() string {
	return Transcript(r.Tokens)
}

// Transcript renders one "<SYMBOLIC_NAME, lexeme, line>" line per token.
func Transcript(toks []lexer.Token) string {
	return joinLines(toks)
}

func joinLines[T interface{ String() string }](items []T) string {
	var sb strings.Builder
	for _, it := range items {
		s := it.String()
		sb.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
