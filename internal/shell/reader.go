package shell

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/term"
)

// LineReader reads one input line at a time. It returns io.EOF once input
// is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ScannerReader reads lines from a non-interactive source such as a pipe.
type ScannerReader struct {
	sc *bufio.Scanner
}

// NewScannerReader returns a LineReader over r.
func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{sc: bufio.NewScanner(r)}
}

func (r *ScannerReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// TerminalReader is a line-editing reader over a terminal in raw mode.
// Output written to it is translated for the raw terminal, so command output
// must go through it as well.
type TerminalReader struct {
	*term.Terminal
	fd    int
	state *term.State
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// OpenTerminal puts the terminal fd into raw mode and returns a reader
// prompting with prompt. Close must be called to restore the terminal.
func OpenTerminal(fd int, rw io.ReadWriter, prompt string) (*TerminalReader, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}
	return &TerminalReader{
		Terminal: term.NewTerminal(rw, prompt),
		fd:       fd,
		state:    state,
	}, nil
}

// Close restores the terminal to its previous state.
func (t *TerminalReader) Close() error {
	return term.Restore(t.fd, t.state)
}
