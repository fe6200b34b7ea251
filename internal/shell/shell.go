// Package shell implements the interactive hexconv shell. Each input line is
// one independent, synchronous command invocation.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nvinuesa/hexconv/internal/command"
	"github.com/nvinuesa/hexconv/internal/logging"
)

// DefaultPrompt is the prompt shown by interactive sessions.
const DefaultPrompt = "hexconv> "

// Built-in commands handled by the shell itself.
const (
	builtinHelp = "help"
	builtinExit = "exit"
	builtinQuit = "quit"
)

// ErrCommandNotFound indicates that no command is registered under a name.
type ErrCommandNotFound struct {
	Name string
}

func (e *ErrCommandNotFound) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

// Config configures a Shell.
type Config struct {
	// Registry provides the commands. Defaults to DefaultRegistry().
	Registry *Registry
	// Logger receives session diagnostics. A nil Logger discards them.
	Logger *log.Logger
	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
	// Err receives error reports. Defaults to os.Stderr.
	Err io.Writer
	// Styled enables terminal styling of the banner and error reports.
	Styled bool
}

// Shell runs commands read line by line.
type Shell struct {
	id       string
	registry *Registry
	logger   *log.Logger
	out      io.Writer
	errOut   io.Writer

	errStyle    lipgloss.Style
	bannerStyle lipgloss.Style
}

// New creates a shell with a fresh session ID.
func New(cfg Config) *Shell {
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}

	id := uuid.NewString()
	s := &Shell{
		id:          id,
		registry:    cfg.Registry,
		logger:      cfg.Logger.With("session", id),
		out:         cfg.Out,
		errOut:      cfg.Err,
		errStyle:    lipgloss.NewStyle(),
		bannerStyle: lipgloss.NewStyle(),
	}
	if cfg.Styled {
		s.errStyle = s.errStyle.Foreground(lipgloss.Color("9")).Bold(true)
		s.bannerStyle = s.bannerStyle.Foreground(lipgloss.Color("12")).Bold(true)
	}
	return s
}

// ID returns the session ID.
func (s *Shell) ID() string {
	return s.id
}

// PrintBanner writes the greeting shown at the start of interactive sessions.
func (s *Shell) PrintBanner() {
	fmt.Fprintln(s.out, s.bannerStyle.Render("hexconv shell"))
	fmt.Fprintf(s.out, "Type '%s' for a list of commands, '%s' to leave.\n", builtinHelp, builtinExit)
}

// Run reads and executes lines until input ends, an exit command is read,
// or ctx is done. A failing command is reported and does not end the session.
func (s *Shell) Run(ctx context.Context, r LineReader) error {
	s.logger.Debug("session started")
	defer s.logger.Debug("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := readLine(ctx, r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := s.Exec(ctx, line)
		if err != nil {
			s.report(err)
		}
		if quit {
			return nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next line from r or for ctx to be done, whichever
// comes first. A read still blocked when ctx is done is abandoned.
func readLine(ctx context.Context, r LineReader) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := r.ReadLine()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

// Exec executes a single line. It reports quit=true when the line asks the
// session to end. Errors returned are those of the invoked command.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool, err error) {
	args, err := Split(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	name, args := args[0], args[1:]
	switch name {
	case builtinExit, builtinQuit:
		return true, nil
	case builtinHelp:
		return false, s.help(args)
	}

	cmd, err := s.build(name)
	if err != nil {
		return false, err
	}
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		s.logger.Debug("command failed", "cmd", name, "err", err)
		return false, err
	}
	return false, nil
}

func (s *Shell) build(name string) (*cobra.Command, error) {
	factory, ok := s.registry.Get(name)
	if !ok {
		return nil, &ErrCommandNotFound{Name: name}
	}

	cmd := factory(command.Options{Logger: s.logger})
	cmd.SetOut(s.out)
	cmd.SetErr(s.errOut)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd, nil
}

func (s *Shell) help(args []string) error {
	if len(args) > 0 {
		cmd, err := s.build(args[0])
		if err != nil {
			return err
		}
		return cmd.Help()
	}

	fmt.Fprintln(s.out, "Available commands:")
	for _, name := range s.registry.Names() {
		factory, _ := s.registry.Get(name)
		fmt.Fprintf(s.out, "  %-12s %s\n", name, factory(command.Options{}).Short)
	}
	fmt.Fprintf(s.out, "  %-12s %s\n", builtinHelp, "Show commands, or the help of one command")
	fmt.Fprintf(s.out, "  %-12s %s\n", builtinExit+", "+builtinQuit, "Leave the shell")
	return nil
}

func (s *Shell) report(err error) {
	msg := strings.TrimRight(err.Error(), "\n")
	fmt.Fprintln(s.errOut, s.errStyle.Render("Error:"), msg)
}
