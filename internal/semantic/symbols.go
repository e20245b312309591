package semantic

import (
	"fmt"

	"github.com/kolkov/minilang/internal/token"
)

// SymbolKind defines the category of a symbol.
type SymbolKind int

const (
	SymbolGlobal   SymbolKind = iota // Global variable
	SymbolLocal                      // Local variable
	SymbolParam                      // Function parameter
	SymbolFunction                   // Function signature
)

// String returns a human-readable name for the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolGlobal:
		return "global"
	case SymbolLocal:
		return "local"
	case SymbolParam:
		return "param"
	case SymbolFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Symbol holds information about a declared symbol.
type Symbol struct {
	Name string         // Variable name or signature key
	Kind SymbolKind     // Category
	Type string         // Declared type keyword (return type for functions)
	Pos  token.Position // Declaration position
}

// SymbolTable implements a hierarchical symbol table with scope support.
// Each scope can have a parent, enabling nested lookups.
type SymbolTable struct {
	parent  *SymbolTable
	symbols map[string]*Symbol
	order   []string // Names in definition order
	name    string   // Scope name (e.g., function name or "global")
}

// NewSymbolTable creates a new symbol table with the given parent.
// Pass nil for a root scope.
func NewSymbolTable(parent *SymbolTable, name string) *SymbolTable {
	return &SymbolTable{
		parent:  parent,
		symbols: make(map[string]*Symbol),
		name:    name,
	}
}

// Name returns the scope name.
func (st *SymbolTable) Name() string {
	return st.name
}

// Parent returns the parent scope, or nil for a root scope.
func (st *SymbolTable) Parent() *SymbolTable {
	return st.parent
}

// Define adds a new symbol to the current scope.
// Returns the created symbol, or nil if a symbol with that name already exists.
func (st *SymbolTable) Define(name string, kind SymbolKind, typ string, pos token.Position) *Symbol {
	if _, exists := st.symbols[name]; exists {
		return nil // Already defined in this scope
	}
	sym := &Symbol{
		Name: name,
		Kind: kind,
		Type: typ,
		Pos:  pos,
	}
	st.symbols[name] = sym
	st.order = append(st.order, name)
	return sym
}

// Lookup searches for a symbol in this scope and all parent scopes.
// Returns the symbol and true if found, nil and false otherwise.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for scope := st; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal searches for a symbol only in the current scope.
// Returns the symbol and true if found, nil and false otherwise.
func (st *SymbolTable) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Names returns the names defined in the current scope in definition order.
func (st *SymbolTable) Names() []string {
	return st.order
}

// Count returns the number of symbols in the current scope.
func (st *SymbolTable) Count() int {
	return len(st.symbols)
}

// Scoping selects how local variable names are tracked across blocks.
type Scoping int

const (
	// ScopeFlat keeps a single set of live local names that is cleared
	// whenever a block is entered. Inner blocks therefore forget outer
	// declarations, and nothing is restored when a block is left.
	ScopeFlat Scoping = iota

	// ScopeNested keeps a stack of scope frames. Entering a block pushes
	// a frame and leaving it pops one; duplicates are only reported
	// within a frame, so inner blocks may shadow outer locals.
	ScopeNested
)

// String returns the configuration name of the scoping mode.
func (s Scoping) String() string {
	switch s {
	case ScopeFlat:
		return "flat"
	case ScopeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// ParseScoping converts a configuration name into a Scoping value.
// The empty string selects ScopeFlat.
func ParseScoping(name string) (Scoping, error) {
	switch name {
	case "", "flat":
		return ScopeFlat, nil
	case "nested":
		return ScopeNested, nil
	default:
		return ScopeFlat, fmt.Errorf("unknown scoping %q (want flat or nested)", name)
	}
}

// declResult is the outcome of declaring a local variable.
type declResult int

const (
	declOK         declResult = iota // Name recorded
	declDuplicate                    // Name already live in this scope, not recorded
	declShadowsParam                 // Name recorded but hides a parameter
)

// locals tracks the live local variable names during the walk.
type locals interface {
	enterFunc(name string, params []Param)
	exitFunc()
	enterBlock()
	exitBlock()
	declare(v Variable) declResult
	live(name string) bool
}

func newLocals(s Scoping) locals {
	if s == ScopeNested {
		return &nestedLocals{}
	}
	return &flatLocals{set: NewSymbolTable(nil, "block")}
}

// flatLocals is a single name set, reset on block entry.
type flatLocals struct {
	set *SymbolTable
}

func (f *flatLocals) enterFunc(string, []Param) {}
func (f *flatLocals) exitFunc()                 {}
func (f *flatLocals) exitBlock()                {}

func (f *flatLocals) enterBlock() {
	f.set = NewSymbolTable(nil, "block")
}

func (f *flatLocals) declare(v Variable) declResult {
	if f.set.Define(v.Name, SymbolLocal, v.Type, v.Pos) == nil {
		return declDuplicate
	}
	return declOK
}

func (f *flatLocals) live(name string) bool {
	_, ok := f.set.LookupLocal(name)
	return ok
}

// nestedLocals is a stack of frames. A function pushes a frame holding
// its parameters; each block pushes a frame for its declarations.
type nestedLocals struct {
	top *SymbolTable
}

func (n *nestedLocals) enterFunc(name string, params []Param) {
	n.top = NewSymbolTable(n.top, name)
	for _, p := range params {
		n.top.Define(p.Name, SymbolParam, p.Type, p.Pos)
	}
}

func (n *nestedLocals) exitFunc() {
	n.pop()
}

func (n *nestedLocals) enterBlock() {
	n.top = NewSymbolTable(n.top, "block")
}

func (n *nestedLocals) exitBlock() {
	n.pop()
}

func (n *nestedLocals) pop() {
	if n.top != nil {
		n.top = n.top.Parent()
	}
}

func (n *nestedLocals) declare(v Variable) declResult {
	if n.top == nil {
		n.enterBlock()
	}
	if n.top.Define(v.Name, SymbolLocal, v.Type, v.Pos) == nil {
		return declDuplicate
	}
	// A function body's own declarations may not reuse a parameter name.
	if outer := n.top.Parent(); outer != nil {
		if sym, ok := outer.LookupLocal(v.Name); ok && sym.Kind == SymbolParam {
			return declShadowsParam
		}
	}
	return declOK
}

func (n *nestedLocals) live(name string) bool {
	if n.top == nil {
		return false
	}
	sym, ok := n.top.Lookup(name)
	return ok && sym.Kind == SymbolLocal
}
