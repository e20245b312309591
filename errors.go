package minilang

import (
	"fmt"
)

// SourceError reports that the MiniLang source could not be read.
// It is the only fatal condition: no analysis is attempted.
type SourceError struct {
	Path string // Source file path
	Err  error  // Underlying I/O error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read source file %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration file or value.
type ConfigError struct {
	Path  string // Configuration file, empty for programmatic configs
	Field string // Offending field, if known
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	msg := "config error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// OutputError reports that one or more report files could not be written.
// Err is a *multierror.Error with one entry per failed file. The analysis
// itself completed; callers usually print this and carry on.
type OutputError struct {
	Dir string // Output directory
	Err error  // Aggregated write failures
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("cannot save reports in %s: %v", e.Dir, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// IsOutputError reports whether err is an OutputError.
func IsOutputError(err error) (*OutputError, bool) {
	if e, ok := err.(*OutputError); ok {
		return e, true
	}
	return nil, false
}
