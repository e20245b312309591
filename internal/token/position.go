package token

import "fmt"

// Position represents a position in source code.
type Position struct {
	// Line number (1-indexed).
	Line int
	// Column is the byte offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of source (0-indexed).
	Offset int
}

// String returns a string representation of the position.
// Format: "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// CharPos returns the 0-indexed character position within the line,
// the form used in diagnostics.
func (p Position) CharPos() int {
	if p.Column == 0 {
		return 0
	}
	return p.Column - 1
}

// Before returns true if p is before other in the source.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
