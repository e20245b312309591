package parser

import (
	"testing"

	"github.com/kolkov/minilang/internal/ast"
)

// FuzzParser tests that the parser handles arbitrary input without
// panicking and that every node's token range stays inside the stream.
func FuzzParser(f *testing.F) {
	seeds := []string{
		`int x = 5;`,
		`int main() { int a = 1; if (a > 0) { a--; } else if (a < 0) { a++; } return a; }`,
		`void f(int a, double b) { for (int i = 0; i < a; i++) { g(i, b); } }`,
		`while (x) { x -= 1; }`,
		`int main( { }`,
		`int = ;`,
		`} } {`,
		`for (;;`,
		`if (a) else`,
		`f(,);`,
		``,
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		prog, _ := Parse(src)
		if prog == nil {
			t.Fatal("Parse returned nil program")
		}
		n := len(prog.Stream)
		ast.Walk(prog, func(node ast.Node) bool {
			first, last := node.Tokens()
			if first < 0 || first >= n || last >= n {
				t.Errorf("%s: token range [%d, %d] outside stream of %d", ast.Label(node), first, last, n)
			}
			_ = prog.Text(node)
			return true
		})
	})
}
