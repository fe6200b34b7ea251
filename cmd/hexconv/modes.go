package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/hexconv/internal/convert"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List available conversion types",
		Long: `List the conversion types accepted by the converter --type option.

Examples:
  # List all conversion types
  hexconv modes`,
		Args: cobra.NoArgs,
		Run:  runModes,
	}
}

func runModes(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Available conversion types:")
	fmt.Fprintln(out)

	for _, m := range convert.Modes() {
		suffix := ""
		if m == convert.DefaultMode {
			suffix = " (default)"
		}
		fmt.Fprintf(out, "  %-6s %s%s\n", m, m.Description(), suffix)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'hexconv converter -t <type> -v <value>' to convert a value.")
}
