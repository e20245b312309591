package semantic

import (
	"strconv"
	"strings"

	"github.com/coregx/coregex"
)

// Literal shapes accepted by the initializer check. The text is the
// verbatim initializer, so it carries no whitespace.
var (
	intPattern    = mustCompile(`^[+-]?[0-9]+$`)
	doublePattern = mustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// isIntLiteral reports whether text is a 32-bit signed integer literal.
func isIntLiteral(text string) bool {
	if !intPattern.MatchString(text) {
		return false
	}
	_, err := strconv.ParseInt(text, 10, 32)
	return err == nil
}

// isDoubleLiteral reports whether text is a floating-point literal.
// Integer literals qualify.
func isDoubleLiteral(text string) bool {
	return doublePattern.MatchString(text)
}

// isStringLiteral reports whether text starts like a string literal.
func isStringLiteral(text string) bool {
	return strings.HasPrefix(text, `"`)
}

// compatible applies the literal heuristic for a declared type.
// Types other than int, double and string are never checked.
func compatible(typ, init string) bool {
	switch typ {
	case "int":
		return isIntLiteral(init)
	case "double":
		return isDoubleLiteral(init)
	case "string":
		return isStringLiteral(init)
	default:
		return true
	}
}
