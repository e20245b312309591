// Package parser provides a MiniLang recursive descent parser.
package parser

import (
	"fmt"

	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes source position information.
type ParseError struct {
	Pos     token.Position // Position where the error occurred
	Message string         // Human-readable error message
	Got     lexer.Token    // Offending token
	Want    string         // Token/value that was expected (optional)
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// ErrorList is a list of parse errors.
type ErrorList []*ParseError

// Error returns a combined error message for all errors.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(got lexer.Token, msg string) {
	*el = append(*el, &ParseError{Pos: got.Pos, Message: msg, Got: got})
}

// Err returns an error if there are any errors, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// quote renders a token the way it appears in messages: 'text'.
func quote(tok lexer.Token) string {
	return "'" + tok.Value + "'"
}

// mismatchedError creates a ParseError for an unexpected token.
func mismatchedError(got lexer.Token, want string) *ParseError {
	return &ParseError{
		Pos:     got.Pos,
		Message: fmt.Sprintf("mismatched input %s expecting %s", quote(got), want),
		Got:     got,
		Want:    want,
	}
}

// missingError creates a ParseError for a token that should have preceded got.
func missingError(got lexer.Token, want string) *ParseError {
	return &ParseError{
		Pos:     got.Pos,
		Message: fmt.Sprintf("missing %s at %s", want, quote(got)),
		Got:     got,
		Want:    want,
	}
}

// extraneousError creates a ParseError for a token that fits nowhere.
func extraneousError(got lexer.Token) *ParseError {
	return &ParseError{
		Pos:     got.Pos,
		Message: fmt.Sprintf("extraneous input %s", quote(got)),
		Got:     got,
	}
}

// noViableError creates a ParseError for a token that cannot start the
// construct being parsed.
func noViableError(got lexer.Token) *ParseError {
	return &ParseError{
		Pos:     got.Pos,
		Message: fmt.Sprintf("no viable alternative at input %s", quote(got)),
		Got:     got,
	}
}
