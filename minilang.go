package minilang

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/kolkov/minilang/internal/ast"
	"github.com/kolkov/minilang/internal/diag"
	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/output"
	"github.com/kolkov/minilang/internal/parser"
	"github.com/kolkov/minilang/internal/semantic"
)

// Version is the minilang version string.
const Version = "0.1.0"

// Token is one entry of the token transcript.
type Token struct {
	Name   string // Symbolic token name, e.g. IDENTIFIER
	Lexeme string // Source text ("<EOF>" for end of input)
	Line   int    // 1-based line
}

// String formats the token as <NAME, lexeme, line>.
func (t Token) String() string {
	return fmt.Sprintf("<%s, %s, %d>", t.Name, t.Lexeme, t.Line)
}

// Tokenize scans src and returns its tokens, ending with EOF.
// Illegal characters are skipped.
func Tokenize(src string) []Token {
	toks := lexer.Tokenize([]byte(src), nil)
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = Token{Name: tok.Type.String(), Lexeme: tok.Value, Line: tok.Pos.Line}
	}
	return out
}

// Result holds the reports produced by one analysis.
// Every report string has one entry per line.
type Result struct {
	Tokens            string // Token transcript
	GlobalVariables   string // "type name[ = init]" per global
	Functions         string // One block per function
	LocalVariables    string // "type name[ = init]" per local
	ControlStructures string // "<Kind> statement: <text>" per construct

	// Diagnostics lists every lexical, syntax and semantic error in
	// detection order.
	Diagnostics []string

	frontEnd int // Lexical and syntax diagnostics
	semantic int // Semantic diagnostics
}

// HasErrors reports whether any diagnostic was produced.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// SyntaxErrors returns the number of lexical and syntax diagnostics.
func (r *Result) SyntaxErrors() int {
	return r.frontEnd
}

// SemanticErrors returns the number of semantic diagnostics.
func (r *Result) SemanticErrors() int {
	return r.semantic
}

// Errors returns the errors.txt contents.
func (r *Result) Errors() string {
	return output.Lines(r.Diagnostics)
}

// files lists the artifacts in the order they are written.
func (r *Result) files() []output.File {
	return []output.File{
		{Name: output.Errors, Content: r.Errors()},
		{Name: output.Tokens, Content: r.Tokens},
		{Name: output.GlobalVariables, Content: r.GlobalVariables},
		{Name: output.Functions, Content: r.Functions},
		{Name: output.LocalVariables, Content: r.LocalVariables},
		{Name: output.ControlStructures, Content: r.ControlStructures},
	}
}

// WriteFiles writes the six report files into dir. Every file is
// attempted; failures are returned together as an *OutputError.
// If log is non-nil, each written file is reported to it.
func (r *Result) WriteFiles(dir string, log io.Writer) error {
	w := output.NewWriter(dir, log)
	if err := w.WriteAll(r.files()...); err != nil {
		return &OutputError{Dir: w.Dir(), Err: err}
	}
	return nil
}

// Analyze parses and analyzes MiniLang source code.
//
// Lexical, syntax and semantic problems never fail the call: they are
// listed in Result.Diagnostics and the reports cover whatever could be
// recovered. The returned error is non-nil only for an invalid config.
//
// Example:
//
//	res, err := minilang.Analyze("int x = 1;\nint main() { return x; }", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.GlobalVariables) // int x = 1
func Analyze(src string, config *Config) (*Result, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()
	scfg, err := config.semanticConfig()
	if err != nil {
		return nil, err
	}
	return analyze([]byte(src), scfg, config.Detailed), nil
}

// AnalyzeFile reads path and analyzes its contents. An empty path
// selects config.Input. A missing or unreadable file yields a
// *SourceError.
func AnalyzeFile(path string, config *Config) (*Result, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()
	if path == "" {
		path = config.Input
	}
	scfg, err := config.semanticConfig()
	if err != nil {
		return nil, err
	}
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return analyze(src, scfg, config.Detailed), nil
}

// Run executes the full pipeline on config.Input:
//  1. read the source (a *SourceError stops here)
//  2. write the pre-analysis token transcript
//  3. parse and analyze
//  4. print the diagnostics to config.Stdout
//  5. write all report files, replacing the first transcript
//
// A write failure does not stop later steps. The Result is returned
// together with an *OutputError describing every failed file.
func Run(config *Config) (*Result, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()
	scfg, err := config.semanticConfig()
	if err != nil {
		return nil, err
	}
	src, err := readSource(config.Input)
	if err != nil {
		return nil, err
	}

	var log io.Writer
	if config.Verbose {
		log = config.Stderr
	}
	w := output.NewWriter(config.OutputDir, log)

	var errs *multierror.Error
	pre := semantic.Transcript(lexer.Tokenize(src, nil))
	if err := w.Write(output.File{Name: output.Tokens, Content: pre}); err != nil {
		errs = multierror.Append(errs, err)
	}

	res := analyze(src, scfg, config.Detailed)

	fmt.Fprintln(config.Stdout, "Errors and warnings:")
	for _, line := range res.Diagnostics {
		fmt.Fprintln(config.Stdout, line)
	}

	if err := w.WriteAll(res.files()...); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return res, &OutputError{Dir: w.Dir(), Err: err}
	}
	return res, nil
}

// PrintTree writes an outline of the parse tree of src to w.
// Syntax errors are returned after the (partial) tree is printed.
func PrintTree(w io.Writer, src string) error {
	prog, parseErr := parser.Parse(src)
	if err := ast.NewPrinter(w).Print(prog); err != nil {
		return err
	}
	return parseErr
}

// readSource loads a source file.
func readSource(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return src, nil
}

// analyze runs the front end and the semantic pass over src.
func analyze(src []byte, scfg semantic.Config, detailed bool) *Result {
	sink := diag.NewSink(detailed)

	prog, _ := parser.ParseBytes(src, parser.Config{
		LexErrors: sink.LexHandler(),
		Listener:  sink,
	})
	frontEnd := sink.Len()

	report, _ := semantic.Analyze(prog, scfg, sink)

	return &Result{
		Tokens:            report.TokenTranscript(),
		GlobalVariables:   report.GlobalVariables(),
		Functions:         report.FunctionsText(),
		LocalVariables:    report.LocalVariables(),
		ControlStructures: report.ControlStructures(),
		Diagnostics:       sink.Lines(),
		frontEnd:          frontEnd,
		semantic:          sink.Count(diag.Semantic),
	}
}
