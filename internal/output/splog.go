// Package output handles user-facing progress and diagnostic output.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured logging and output
type Splog struct {
	writer  io.Writer
	verbose bool
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
	}
}

// NewSplogWithWriter creates a splog writing to the given writer (for tests)
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// SetVerbose enables or disables debug output
func (s *Splog) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, warnLabel()+" "+format+"\n", args...)
}

// Debug writes a debug message; shown only in verbose mode
func (s *Splog) Debug(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	fmt.Fprintf(s.writer, debugLabel()+" "+format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
