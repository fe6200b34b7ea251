// Package command declares the commands shared by the hexconv CLI and the
// interactive shell.
package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nvinuesa/hexconv/internal/convert"
	"github.com/nvinuesa/hexconv/internal/logging"
)

// ConverterName is the name the converter command is invoked by.
const ConverterName = "converter"

// Options configures commands built by this package.
type Options struct {
	// Logger receives debug output. A nil Logger discards it.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}

type converterFlags struct {
	help  bool
	mode  string
	value string
}

// NewConverter returns a new converter command. Each call returns a command
// with its own option state, so every invocation starts from the defaults.
func NewConverter(opts Options) *cobra.Command {
	var flags converterFlags
	logger := opts.logger()

	cmd := &cobra.Command{
		Use:   ConverterName,
		Short: "Convert a value to its equivalent in another base",
		Long: `Convert a 32-bit integer between hexadecimal and decimal.

Conversion types:
` + modeList() + `
Hexadecimal input accepts 0-9, a-f and A-F with an optional sign; a 0x prefix
is not accepted. Negative values converted to hexadecimal are printed in
two's complement.

Examples:
  # Hexadecimal to decimal (the default type)
  converter -v 1A

  # Decimal to hexadecimal
  converter -t D2H -v 26`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := convert.ParseMode(flags.mode)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := convert.Mode(flags.mode)
			if !mode.Valid() {
				return nil
			}

			logger.Debug("converting", "mode", mode, "value", flags.value)

			result, err := convert.Convert(mode, flags.value)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.help, "help", "H", false, "display this help and exit")
	cmd.Flags().StringVarP(&flags.mode, "type", "t", convert.DefaultMode.String(), "Converter type ("+joinModes("|")+")")
	cmd.Flags().StringVarP(&flags.value, "value", "v", "", "Value to convert (required)")

	cmd.MarkFlagRequired("value")

	return cmd
}

func modeList() string {
	var sb strings.Builder
	for _, m := range convert.Modes() {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", m, m.Description()))
	}
	return sb.String()
}

func joinModes(sep string) string {
	modes := convert.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, sep)
}
