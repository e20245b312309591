// Package output persists analysis reports as text files.
//
// Each file is written in a single create-write-close step. A failure
// on one file does not stop the others; all failures are returned
// together as a go-multierror.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// Artifact file names.
const (
	Tokens            = "tokens.txt"
	GlobalVariables   = "globalVariables.txt"
	Functions         = "functions.txt"
	LocalVariables    = "localVariables.txt"
	ControlStructures = "controlStructures.txt"
	Errors            = "errors.txt"
)

// File is one artifact to write.
type File struct {
	Name    string // File name relative to the output directory
	Content string
}

// FileError reports a failure to write one artifact.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Writer writes artifacts into a directory.
type Writer struct {
	dir string
	log io.Writer // Receives a notice per written file (may be nil)
}

// NewWriter creates a Writer for dir. If log is non-nil, a line is
// written to it for every artifact persisted.
func NewWriter(dir string, log io.Writer) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, log: log}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the full path of the named artifact.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Write persists a single artifact, replacing any previous version.
func (w *Writer) Write(f File) error {
	path := w.Path(f.Name)
	if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
		return &FileError{Path: path, Err: err}
	}
	if w.log != nil {
		fmt.Fprintf(w.log, "wrote %s (%d bytes)\n", path, len(f.Content))
	}
	return nil
}

// WriteAll persists every artifact in order. It attempts all of them
// and returns a *multierror.Error listing each failure, or nil.
func (w *Writer) WriteAll(files ...File) error {
	var result *multierror.Error
	for _, f := range files {
		if err := w.Write(f); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Lines joins lines into file content, one per line with a trailing
// newline after each.
func Lines(lines []string) string {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	buf := make([]byte, 0, n)
	for _, l := range lines {
		buf = append(buf, l...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
