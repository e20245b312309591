package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/hashicorp/go-multierror"
)

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	var log bytes.Buffer
	w := NewWriter(dir, &log)

	err := w.WriteAll(
		File{Name: GlobalVariables, Content: "int x = 1\n"},
		File{Name: Errors, Content: ""},
	)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, GlobalVariables))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "int x = 1\n" {
		t.Errorf("content = %q", got)
	}
	if info, err := os.Stat(filepath.Join(dir, Errors)); err != nil || info.Size() != 0 {
		t.Errorf("errors.txt: %v, %v", info, err)
	}
	if n := strings.Count(log.String(), "wrote "); n != 2 {
		t.Errorf("log has %d notices, want 2:\n%s", n, log.String())
	}
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)
	if err := w.Write(File{Name: Tokens, Content: "first version\n"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(File{Name: Tokens, Content: "second\n"}); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(w.Path(Tokens))
	if string(got) != "second\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteAllCollectsFailures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "dir")
	w := NewWriter(dir, nil)

	err := w.WriteAll(
		File{Name: Functions, Content: "x"},
		File{Name: LocalVariables, Content: "y"},
	)
	if err == nil {
		t.Fatal("expected an error")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("error is %T, want *multierror.Error", err)
	}
	var paths []string
	for _, e := range merr.Errors {
		var fe *FileError
		if !errors.As(e, &fe) {
			t.Fatalf("wrapped error is %T, want *FileError", e)
		}
		paths = append(paths, filepath.Base(fe.Path))
		if !errors.Is(fe, os.ErrNotExist) {
			t.Errorf("%s: %v is not ErrNotExist", fe.Path, fe.Err)
		}
	}
	if diff := deep.Equal(paths, []string{Functions, LocalVariables}); diff != nil {
		t.Error(diff)
	}
}

func TestDefaultDir(t *testing.T) {
	w := NewWriter("", nil)
	if w.Dir() != "." {
		t.Errorf("Dir() = %q", w.Dir())
	}
	if w.Path(Tokens) != Tokens {
		t.Errorf("Path() = %q", w.Path(Tokens))
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a\n"},
		{[]string{"a", "", "b"}, "a\n\nb\n"},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); got != tt.want {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
