package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nvinuesa/hexconv/internal/shell"
)

type shellFlags struct {
	prompt string
	quiet  bool
}

func newShellCmd(logger *log.Logger) *cobra.Command {
	var flags shellFlags

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive converter shell",
		Long: `Start an interactive shell that runs one command per line.

Every line is an independent invocation: options are never carried over from
one line to the next, and a failed conversion is reported without ending the
session. Type 'help' to list the commands and 'exit' or 'quit' to leave.

When standard input is not a terminal, lines are read from it without a
prompt, which allows scripted use.

Examples:
  # Interactive session
  hexconv shell

  # Scripted session
  printf 'converter -t D2H -v 255\n' | hexconv shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, logger, flags)
		},
	}

	cmd.Flags().StringVar(&flags.prompt, "prompt", shell.DefaultPrompt, "Prompt shown in interactive sessions")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the banner")

	return cmd
}

func runShell(cmd *cobra.Command, logger *log.Logger, flags shellFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !shell.IsTerminal(int(in.Fd())) {
		s := shell.New(shell.Config{
			Logger: logger,
			Out:    cmd.OutOrStdout(),
			Err:    cmd.ErrOrStderr(),
		})
		return s.Run(ctx, shell.NewScannerReader(cmd.InOrStdin()))
	}

	rw := struct {
		io.Reader
		io.Writer
	}{in, cmd.OutOrStdout()}

	t, err := shell.OpenTerminal(int(in.Fd()), rw, flags.prompt)
	if err != nil {
		return err
	}
	defer t.Close()

	// Raw mode needs \r\n line endings, which the terminal writer provides.
	logger.SetOutput(t)

	s := shell.New(shell.Config{
		Logger: logger,
		Out:    t,
		Err:    t,
		Styled: true,
	})
	if !flags.quiet {
		s.PrintBanner()
	}
	return s.Run(ctx, t)
}
