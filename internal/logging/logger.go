// Package logging builds the application logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr so stdout only carries command output.
// Debug enables debug-level messages; otherwise only warnings and errors are shown.
func New(debug bool) *log.Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "hexconv",
		Level:  level,
	})
}

// NewNop returns a logger that discards everything.
func NewNop() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
