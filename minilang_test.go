package minilang_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/hashicorp/go-multierror"

	"github.com/kolkov/minilang"
)

const sample = `int limit = 10;
string greeting = "hi";

int fact(int n) {
	int r = 1;
	while (n > 1) { r *= n; n--; }
	return r;
}

int main(int a, int b) {
	int total = 0;
	for (int i = 0; i < limit; i++) { total += i; }
	if (a > b) { total = a; } else { total = b; }
	return total;
}
`

func TestAnalyze(t *testing.T) {
	res, err := minilang.Analyze(sample, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"globals", res.GlobalVariables, "int limit = 10\nstring greeting = \"hi\"\n"},
		{"locals", res.LocalVariables, "int r = 1\nint total = 0\nint i = 0\n"},
		{"controls", res.ControlStructures,
			"While statement: while(n>1){r*=n;n--;}\n" +
				"For statement: for(inti=0;i<limit;i++){total+=i;}\n" +
				"If statement: if(a>b){total=a;}else{total=b;}\n"},
		{"functions", res.Functions,
			"Function: fact\nType: iterative\nReturn Type: int\nParameters: int n\n" +
				"Local Variables:\nint r = 1\n\n" +
				"Control Structures:\nWhile statement: while(n>1){r*=n;n--;}\n\n\n" +
				"Function: main\nType: entry\nReturn Type: int\nParameters: int a, int b\n" +
				"Local Variables:\nint total = 0\n\n" +
				"Control Structures:\nFor statement: for(inti=0;i<limit;i++){total+=i;}\n" +
				"If statement: if(a>b){total=a;}else{total=b;}\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", tt.got, tt.want)
			}
		})
	}

	if !strings.HasPrefix(res.Tokens, "<KEYWORD, int, 1>\n<IDENTIFIER, limit, 1>\n") {
		t.Errorf("token transcript starts with %q", res.Tokens[:40])
	}
	if !strings.HasSuffix(res.Tokens, "<EOF, <EOF>, 16>\n") {
		t.Errorf("token transcript does not end with EOF on line 16")
	}
}

func TestAnalyzeDiagnostics(t *testing.T) {
	src := "int a = 1 @;\nint a = 2;\nint main() { x = ; }"
	res, err := minilang.Analyze(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"[Lexical Error] Line 1, Position 10: illegal character '@'",
		"[Syntax Error] Line 3, Position 17: no viable alternative at input ';'",
		"[Semantic Error] Line 2, Position 4: Global variable 'a' is already defined.",
	}
	if diff := deep.Equal(res.Diagnostics, want); diff != nil {
		t.Error(diff)
	}
	if res.SyntaxErrors() != 2 || res.SemanticErrors() != 1 {
		t.Errorf("counts: syntax=%d semantic=%d", res.SyntaxErrors(), res.SemanticErrors())
	}
	if res.Errors() != strings.Join(want, "\n")+"\n" {
		t.Errorf("Errors() = %q", res.Errors())
	}
	// Reports are still produced.
	if res.GlobalVariables != "int a = 1\n" {
		t.Errorf("GlobalVariables = %q", res.GlobalVariables)
	}
}

func TestAnalyzeDetailed(t *testing.T) {
	res, err := minilang.Analyze("int a = 1 @;\n}", &minilang.Config{Detailed: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"[Detailed Syntax Error] Line 1, Position 10: illegal character '@' (Offending symbol: 64)",
		"[Detailed Syntax Error] Line 2, Position 0: extraneous input '}' (Offending symbol: })",
	}
	if diff := deep.Equal(res.Diagnostics, want); diff != nil {
		t.Error(diff)
	}
}

func TestAnalyzeConfig(t *testing.T) {
	src := "void start() { } void main() { { int a; } int a; }"

	res, err := minilang.Analyze(src, &minilang.Config{EntryPoint: "start", Scoping: "nested"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Functions, "Function: start\nType: entry\n") {
		t.Errorf("start is not the entry point:\n%s", res.Functions)
	}
	if !strings.Contains(res.Functions, "Function: main\nType: iterative\n") {
		t.Errorf("main should be iterative:\n%s", res.Functions)
	}
	if res.SemanticErrors() != 0 {
		t.Errorf("nested scoping: %v", res.Diagnostics)
	}

	res, err = minilang.Analyze(src, &minilang.Config{Scoping: "flat"})
	if err != nil {
		t.Fatal(err)
	}
	// The inner block's name is still live after it closes.
	if res.SemanticErrors() != 1 {
		t.Errorf("flat scoping: %v", res.Diagnostics)
	}
}

func TestInvalidScoping(t *testing.T) {
	_, err := minilang.Analyze("int a;", &minilang.Config{Scoping: "deep"})
	var ce *minilang.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	if ce.Field != "scoping" {
		t.Errorf("Field = %q", ce.Field)
	}
}

func TestAnalyzeFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.mini")
	_, err := minilang.AnalyzeFile(path, nil)

	var se *minilang.SourceError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SourceError", err)
	}
	if se.Path != path || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.mini")
	if err := os.WriteFile(path, []byte("double rate = 0.5;"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := minilang.AnalyzeFile("", &minilang.Config{Input: path})
	if err != nil {
		t.Fatal(err)
	}
	if res.GlobalVariables != "double rate = 0.5\n" {
		t.Errorf("GlobalVariables = %q", res.GlobalVariables)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "program.mini")
	src := "int x = \"5\";\nint main() { while (x > 0) { x--; } }\n"
	if err := os.WriteFile(input, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	res, err := minilang.Run(&minilang.Config{
		Input:     input,
		OutputDir: dir,
		Verbose:   true,
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantConsole := "Errors and warnings:\n" +
		"[Semantic Error] Line 1, Position 4: Incompatible type for variable 'x'.\n"
	if stdout.String() != wantConsole {
		t.Errorf("console =\n%s", stdout.String())
	}

	files := map[string]string{
		"errors.txt":            res.Errors(),
		"tokens.txt":            res.Tokens,
		"globalVariables.txt":   "int x = \"5\"\n",
		"functions.txt":         res.Functions,
		"localVariables.txt":    "",
		"controlStructures.txt": "While statement: while(x>0){x--;}\n",
	}
	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s =\n%s\nwant\n%s", name, got, want)
		}
	}

	// tokens.txt is written twice: before and after analysis.
	if n := strings.Count(stderr.String(), "tokens.txt"); n != 2 {
		t.Errorf("tokens.txt written %d times, want 2:\n%s", n, stderr.String())
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := minilang.Run(&minilang.Config{
		Input:     filepath.Join(dir, "program.mini"),
		OutputDir: dir,
	})
	var se *minilang.SourceError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SourceError", err)
	}
	// Nothing is written when the source is missing.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("output directory has %d entries", len(entries))
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "program.mini")
	if err := os.WriteFile(input, []byte("int a;"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := minilang.Run(&minilang.Config{
		Input:     input,
		OutputDir: filepath.Join(dir, "missing"),
	})
	if res == nil {
		t.Fatal("Result should be returned even when saving fails")
	}

	oe, ok := minilang.IsOutputError(err)
	if !ok {
		t.Fatalf("error = %v, want *OutputError", err)
	}
	var merr *multierror.Error
	if !errors.As(oe.Err, &merr) {
		t.Fatalf("wrapped error is %T, want *multierror.Error", oe.Err)
	}
	// The early transcript plus the six reports.
	if len(merr.Errors) != 7 {
		t.Errorf("got %d write failures, want 7: %v", len(merr.Errors), merr)
	}
}

func TestTokenize(t *testing.T) {
	var got []string
	for _, tok := range minilang.Tokenize("int x;\nx++;") {
		got = append(got, tok.String())
	}
	want := []string{
		"<KEYWORD, int, 1>",
		"<IDENTIFIER, x, 1>",
		"<SEMICOLON, ;, 1>",
		"<IDENTIFIER, x, 2>",
		"<INCREMENT, ++, 2>",
		"<SEMICOLON, ;, 2>",
		"<EOF, <EOF>, 2>",
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	if err := minilang.PrintTree(&buf, "int a;"); err != nil {
		t.Fatal(err)
	}
	want := "Program (1 items) @1:1\n  GlobalDecl @1:1\n    VarDecl int a @1:1\n"
	if buf.String() != want {
		t.Errorf("PrintTree =\n%s", buf.String())
	}

	buf.Reset()
	if err := minilang.PrintTree(&buf, "int main( {"); err == nil {
		t.Error("expected syntax error")
	}
	if !strings.HasPrefix(buf.String(), "Program (1 items)") {
		t.Errorf("partial tree not printed:\n%s", buf.String())
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("valid", func(t *testing.T) {
		path := write(t, "ok.yaml", "input: src.mini\noutput_dir: out\nentry_point: start\nscoping: nested\ndetailed: true\n")
		cfg, err := minilang.LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		want := &minilang.Config{
			Input:      "src.mini",
			OutputDir:  "out",
			EntryPoint: "start",
			Scoping:    "nested",
			Detailed:   true,
		}
		if diff := deep.Equal(cfg, want); diff != nil {
			t.Error(diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		cfg, err := minilang.LoadConfig(write(t, "empty.yaml", ""))
		if err != nil {
			t.Fatal(err)
		}
		if diff := deep.Equal(cfg, &minilang.Config{}); diff != nil {
			t.Error(diff)
		}
	})

	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "colour: red\n"},
		{"bad scoping", "scoping: deep\n"},
		{"malformed", "scoping: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(t, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.content)
			_, err := minilang.LoadConfig(path)
			var ce *minilang.ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
			if ce.Path != path {
				t.Errorf("Path = %q, want %q", ce.Path, path)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := minilang.LoadConfig(filepath.Join(dir, "absent.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want ErrNotExist", err)
		}
	})
}

func ExampleAnalyze() {
	src := "int x = 1;\nint main(int a, int b) { if (a > b) { a = b; } return 0; }"
	res, err := minilang.Analyze(src, nil)
	if err != nil {
		panic(err)
	}
	fmt.Print(res.GlobalVariables)
	fmt.Print(res.ControlStructures)
	fmt.Println(len(res.Diagnostics))
	// Output:
	// int x = 1
	// If statement: if(a>b){a=b;}
	// 0
}
