// Package main provides the entry point for the hexconv CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nvinuesa/hexconv/internal/command"
	"github.com/nvinuesa/hexconv/internal/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-edge"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	var debug bool
	logger := logging.New(false)

	rootCmd := &cobra.Command{
		Use:   "hexconv",
		Short: "Convert values between hexadecimal and decimal",
		Long: `hexconv converts 32-bit integers between hexadecimal and decimal.

Conversions can be run one at a time with the converter command, or
interactively from the hexconv shell.

Examples:
  # Hexadecimal to decimal
  hexconv converter -t H2D -v 1A

  # Decimal to hexadecimal
  hexconv converter -t D2H -v 26

  # Start the interactive shell
  hexconv shell`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(command.NewConverter(command.Options{Logger: logger}))
	rootCmd.AddCommand(newShellCmd(logger))
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
