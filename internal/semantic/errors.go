// Package semantic provides semantic analysis for MiniLang programs.
//
// The analyzer makes a single depth-first pass over the parse tree and:
//   - Tracks global variables, function signatures and live locals
//   - Reports duplicate declarations and incompatible literal initializers
//   - Classifies functions as entry, iterative or recursive
//   - Checks call sites against the registered signatures
//   - Assembles the global, function, local and control-structure reports
//
// MiniLang analysis is deliberately text-based:
//   - Types are compared as the raw keyword text
//   - Recursion is a substring match of the name in the body text
//   - Call sites match signatures by their verbatim argument text
package semantic

import (
	"fmt"
	"strings"

	"github.com/kolkov/minilang/internal/token"
)

// Error represents a semantic analysis error with source location.
type Error struct {
	Pos     token.Position
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ErrorList is a collection of semantic errors.
type ErrorList []*Error

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, format string, args ...any) {
	*el = append(*el, errorf(pos, format, args...))
}

// Err returns an error if the list is non-empty, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Error implements the error interface for ErrorList.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(el[0].Error())
		for _, e := range el[1:] {
			sb.WriteByte('\n')
			sb.WriteString(e.Error())
		}
		return sb.String()
	}
}

// errorf creates a new semantic error.
func errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error messages. They are part of the errors.txt format.
const (
	errDuplicateGlobal = "Global variable '%s' is already defined."
	errDuplicateLocal  = "Local variable '%s' is already defined in this block."
	errIncompatible    = "Incompatible type for variable '%s'."
	errParamConflict   = "Parameter '%s' conflicts with a local variable."
	errDuplicateFunc   = "Function '%s' with parameters '%s' is already defined."
	errUndefinedFunc   = "Function '%s' with arguments '%s' is not defined."
)
