// minilang - MiniLang semantic analyzer
//
// Analyzes a MiniLang source file and writes the token transcript,
// variable inventories, function blocks, control structures and
// diagnostics as text reports.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		errorExit(err)
	}
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "minilang: %v\n", err)
	os.Exit(1)
}
