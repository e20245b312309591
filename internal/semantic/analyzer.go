package semantic

import (
	"strings"

	"github.com/kolkov/minilang/internal/ast"
	"github.com/kolkov/minilang/internal/token"
)

// DefaultEntryPoint is the function name classified as the entry point
// when Config.EntryPoint is empty.
const DefaultEntryPoint = "main"

// Config configures an analysis pass.
type Config struct {
	// EntryPoint is the name of the program entry function.
	// Default: "main".
	EntryPoint string

	// Scoping selects flat or nested local scoping. Default: ScopeFlat.
	Scoping Scoping
}

// Reporter receives semantic errors as they are detected.
type Reporter interface {
	Semantic(pos token.Position, msg string)
}

// Analyzer performs semantic analysis on a parse tree.
type Analyzer struct {
	prog     *ast.Program
	config   Config
	reporter Reporter
	report   *Report

	globals *SymbolTable // Global variable names
	funcs   *SymbolTable // Function signature keys
	locals  locals       // Live local names
}

// Analyze walks prog once and returns the assembled report.
// reporter may be nil.
//
// Semantic errors never stop the walk. They are sent to reporter, kept
// in Report.Errors and returned together as an ErrorList.
func Analyze(prog *ast.Program, config Config, reporter Reporter) (*Report, error) {
	if config.EntryPoint == "" {
		config.EntryPoint = DefaultEntryPoint
	}
	a := &Analyzer{
		prog:     prog,
		config:   config,
		reporter: reporter,
		report:   &Report{Tokens: prog.Stream},
		globals:  NewSymbolTable(nil, "global"),
		funcs:    NewSymbolTable(nil, "functions"),
		locals:   newLocals(config.Scoping),
	}

	ast.Inspect(prog, a.visit)

	return a.report, a.report.Errors.Err()
}

// errorf records a semantic error.
func (a *Analyzer) errorf(pos token.Position, format string, args ...any) {
	err := errorf(pos, format, args...)
	a.report.Errors = append(a.report.Errors, err)
	if a.reporter != nil {
		a.reporter.Semantic(err.Pos, err.Message)
	}
}

// visit is the ast.Inspect callback. A nil node marks leaving parent.
func (a *Analyzer) visit(node, parent ast.Node) bool {
	if node == nil {
		a.leave(parent)
		return true
	}

	switch n := node.(type) {
	case *ast.VarDecl:
		a.varDecl(n, parent)
	case *ast.FuncDecl:
		a.funcDecl(n)
	case *ast.Block:
		a.locals.enterBlock()
	case ast.Control:
		a.control(n)
	case *ast.CallExpr:
		a.call(n)
	}
	return true
}

// leave handles the end of a node's subtree.
func (a *Analyzer) leave(node ast.Node) {
	switch node.(type) {
	case *ast.Block:
		a.locals.exitBlock()
	case *ast.FuncDecl:
		a.locals.exitFunc()
	}
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// varDecl records a variable declaration as global or local depending
// on its syntactic parent.
func (a *Analyzer) varDecl(decl *ast.VarDecl, parent ast.Node) {
	if decl.Name == "" {
		return // recovered from a syntax error
	}
	v := a.variable(decl)

	switch parent.(type) {
	case *ast.Program, *ast.GlobalDecl:
		if a.globals.Define(v.Name, SymbolGlobal, v.Type, v.Pos) == nil {
			a.errorf(v.Pos, errDuplicateGlobal, v.Name)
			return
		}
		a.report.Globals = append(a.report.Globals, v)

	case *ast.LocalDecl, *ast.Block:
		switch a.locals.declare(v) {
		case declDuplicate:
			a.errorf(v.Pos, errDuplicateLocal, v.Name)
			return
		case declShadowsParam:
			a.errorf(v.Pos, errParamConflict, v.Name)
		}
		a.report.Locals = append(a.report.Locals, v)

	default:
		return
	}

	if v.HasInit && !compatible(v.Type, v.Init) {
		a.errorf(v.Pos, errIncompatible, v.Name)
	}
}

// variable builds the record for a declaration. An initializer that
// failed to parse leaves no text and counts as absent.
func (a *Analyzer) variable(decl *ast.VarDecl) Variable {
	init := a.prog.Text(decl.Init)
	return Variable{
		Type:    decl.Type,
		Name:    decl.Name,
		Init:    init,
		HasInit: init != "",
		Pos:     decl.NamePos,
	}
}

// -----------------------------------------------------------------------------
// Functions
// -----------------------------------------------------------------------------

// funcDecl classifies and registers a function and appends its report
// block. Its body is walked afterwards by Inspect.
func (a *Analyzer) funcDecl(fn *ast.FuncDecl) {
	f := &Function{
		Name:       fn.Name,
		Kind:       a.classify(fn),
		ReturnType: fn.ReturnType,
		Signature:  Signature{Name: fn.Name},
		Pos:        fn.NamePos,
	}

	if fn.Params != nil {
		for _, p := range fn.Params.List {
			if a.locals.live(p.Name) {
				a.errorf(p.NamePos, errParamConflict, p.Name)
			}
			f.Signature.Params = append(f.Signature.Params, Param{Type: p.Type, Name: p.Name, Pos: p.NamePos})
		}
	}
	a.locals.enterFunc(fn.Name, f.Signature.Params)

	if a.funcs.Define(f.Signature.Key(), SymbolFunction, f.ReturnType, f.Pos) == nil {
		a.errorf(f.Pos, errDuplicateFunc, f.Name, f.Signature.ParamText())
		return
	}

	if fn.Body != nil {
		for _, stmt := range fn.Body.Stmts {
			switch s := stmt.(type) {
			case *ast.VarDecl:
				if s.Name == "" {
					continue
				}
				f.Locals = append(f.Locals, a.variable(s))
			case ast.Control:
				f.Controls = append(f.Controls, a.controlEntry(s))
			}
		}
	}

	a.report.Functions = append(a.report.Functions, f)
}

// classify returns the function's kind. Recursion is detected by the
// function name occurring anywhere in the body text, so a name inside a
// string literal or a longer identifier also counts.
func (a *Analyzer) classify(fn *ast.FuncDecl) FuncKind {
	switch {
	case fn.Name == a.config.EntryPoint:
		return FuncEntry
	case fn.Body != nil && strings.Contains(a.prog.Text(fn.Body), fn.Name):
		return FuncRecursive
	default:
		return FuncIterative
	}
}

// -----------------------------------------------------------------------------
// Control structures and calls
// -----------------------------------------------------------------------------

// control appends an if, while or for statement to the control log.
func (a *Analyzer) control(c ast.Control) {
	a.report.Controls = append(a.report.Controls, a.controlEntry(c))
}

func (a *Analyzer) controlEntry(c ast.Control) Control {
	return Control{Kind: c.Kind(), Text: a.prog.Text(c), Pos: c.Pos()}
}

// call checks a call site against the signatures registered so far.
func (a *Analyzer) call(call *ast.CallExpr) {
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		args[i] = a.prog.Text(arg)
	}
	if _, ok := a.funcs.LookupLocal(callKey(call.Name, args)); !ok {
		a.errorf(call.NamePos, errUndefinedFunc, call.Name, strings.Join(args, ", "))
	}
}
