// Package diag collects the diagnostics produced while analyzing a
// MiniLang program: lexical and syntax errors reported by the front end
// and semantic errors reported by the analyzer.
//
// Diagnostics are kept in detection order and never deduplicated.
// Nothing recorded here stops the pipeline.
package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/token"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Lexical        Severity = iota // Illegal character in the input
	Syntax                         // Grammar violation or other front-end error
	SyntaxDetailed                 // Syntax error rendered with its offending symbol
	Semantic                       // Violation found by the analyzer
)

// String returns the bracketed tag used when rendering a diagnostic.
func (s Severity) String() string {
	switch s {
	case Lexical:
		return "Lexical Error"
	case Syntax:
		return "Syntax Error"
	case SyntaxDetailed:
		return "Detailed Syntax Error"
	case Semantic:
		return "Semantic Error"
	default:
		return "Error"
	}
}

// illegalChar marks lexer messages that are lexical rather than syntactic.
const illegalChar = "illegal character"

// Diagnostic is a single recorded error.
type Diagnostic struct {
	Severity Severity
	Line     int    // 1-based line
	Column   int    // 0-based character position within the line
	Message  string // Message text
	Symbol   string // Offending symbol, rendered only for SyntaxDetailed
}

// String renders the diagnostic as one line of errors.txt.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("[%s] Line %d, Position %d: %s", d.Severity, d.Line, d.Column, d.Message)
	if d.Severity == SyntaxDetailed {
		s += fmt.Sprintf(" (Offending symbol: %s)", d.Symbol)
	}
	return s
}

// Sink is an append-only, ordered collection of diagnostics.
// The zero value is ready to use.
type Sink struct {
	// Detailed makes front-end errors carry their offending symbol.
	Detailed bool

	list []Diagnostic
}

// NewSink creates an empty sink.
func NewSink(detailed bool) *Sink {
	return &Sink{Detailed: detailed}
}

// Add appends a diagnostic.
func (s *Sink) Add(d Diagnostic) {
	s.list = append(s.list, d)
}

// LexError records an error from the lexer channel. code is the integer
// value of the offending character.
func (s *Sink) LexError(line, charPos, code int, msg string) {
	d := Diagnostic{Line: line, Column: charPos, Message: msg}
	switch {
	case s.Detailed:
		d.Severity = SyntaxDetailed
		d.Symbol = strconv.Itoa(code)
	case strings.Contains(msg, illegalChar):
		d.Severity = Lexical
	default:
		d.Severity = Syntax
	}
	s.Add(d)
}

// LexHandler adapts LexError to the lexer's callback signature.
func (s *Sink) LexHandler() lexer.ErrorHandler {
	return func(pos token.Position, code int, msg string) {
		s.LexError(pos.Line, pos.CharPos(), code, msg)
	}
}

// SyntaxError records an error from the parser channel.
func (s *Sink) SyntaxError(offending lexer.Token, line, charPos int, msg string) {
	d := Diagnostic{Severity: Syntax, Line: line, Column: charPos, Message: msg}
	if s.Detailed {
		d.Severity = SyntaxDetailed
		d.Symbol = offending.Value
	}
	s.Add(d)
}

// Semantic records an analyzer error at pos.
func (s *Sink) Semantic(pos token.Position, msg string) {
	s.Add(Diagnostic{Severity: Semantic, Line: pos.Line, Column: pos.CharPos(), Message: msg})
}

// Diagnostics returns the recorded diagnostics in detection order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.list
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int {
	return len(s.list)
}

// Count returns the number of diagnostics with the given severity.
func (s *Sink) Count(sev Severity) int {
	n := 0
	for _, d := range s.list {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Lines renders every diagnostic, one string each.
func (s *Sink) Lines() []string {
	lines := make([]string, len(s.list))
	for i, d := range s.list {
		lines[i] = d.String()
	}
	return lines
}

// WriteTo writes one rendered diagnostic per line to w.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, d := range s.list {
		n, err := io.WriteString(w, d.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
