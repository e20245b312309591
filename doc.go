// Package minilang provides a semantic analyzer and report generator for
// MiniLang, a small C-like imperative language.
//
// A single pass over the parse tree produces:
//   - Diagnostics for lexical, syntax and semantic errors
//   - A listing of global variables
//   - A structured report per function (entry, iterative or recursive)
//   - A listing of local variables
//   - A transcript of every if, while and for statement
//
// # Quick Start
//
// Analyze source held in memory:
//
//	res, err := minilang.Analyze(src, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d)
//	}
//	fmt.Print(res.Functions)
//
// Run the whole pipeline, writing the report files:
//
//	_, err := minilang.Run(&minilang.Config{
//	    Input:     "program.mini",
//	    OutputDir: "out",
//	    Stdout:    os.Stdout,
//	})
//
// # Configuration
//
// The [Config] type selects the input and output locations, the entry
// point name, the local scoping mode and the diagnostic detail. It can be
// loaded from YAML with [LoadConfig].
//
// # Error Handling
//
// Problems in the analyzed program are diagnostics, not Go errors. Errors
// are returned as specific types:
//   - [SourceError]: the input file is missing or unreadable
//   - [ConfigError]: an invalid configuration file or value
//   - [OutputError]: one or more report files could not be written
//
// # Known Approximations
//
// Analysis is text-based. Recursion is a substring match of the
// function name in its body text, and call sites match signatures by their
// verbatim argument text, so only zero-argument calls to zero-parameter
// functions ever match.
package minilang
