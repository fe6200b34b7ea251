package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvinuesa/hexconv/internal/convert"
	"github.com/nvinuesa/hexconv/internal/logging"
)

func runConverter(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewConverter(Options{})
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	return out.String(), err
}

func TestConverterScenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hex to decimal", []string{"-t", "H2D", "-v", "1A"}, "26\n"},
		{"decimal to hex", []string{"-t", "D2H", "-v", "26"}, "1a\n"},
		{"negative to hex", []string{"-t", "D2H", "-v", "-1"}, "ffffffff\n"},
		{"long flags", []string{"--type", "D2H", "--value", "255"}, "ff\n"},
		{"default type is H2D", []string{"-v", "ff"}, "255\n"},
		{"equals syntax", []string{"--type=H2D", "--value=-1a"}, "-26\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runConverter(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConverterMalformedValue(t *testing.T) {
	out, err := runConverter(t, "-t", "H2D", "-v", "zz")
	require.Error(t, err)
	assert.True(t, convert.IsParseError(err))
	assert.Empty(t, out, "no output line on a failed conversion")

	out, err = runConverter(t, "-t", "D2H", "-v", "12.5")
	require.Error(t, err)
	assert.True(t, convert.IsParseError(err))
	assert.Empty(t, out)
}

func TestConverterHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"short flag", []string{"-H"}},
		{"long flag", []string{"--help"}},
		{"with unparsable value", []string{"-H", "-t", "H2D", "-v", "zz"}},
		{"with invalid type", []string{"-H", "-t", "nope"}},
		{"without value", []string{"-t", "D2H", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runConverter(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, "--value")
			assert.Contains(t, out, "display this help and exit")
			assert.NotContains(t, out, "\n26\n")
		})
	}
}

func TestConverterRejectsInvalidType(t *testing.T) {
	for _, mode := range []string{"", "h2d", "d2h", "HEX", "B2D"} {
		t.Run(mode, func(t *testing.T) {
			out, err := runConverter(t, "-t", mode, "-v", "1")
			require.Error(t, err)
			assert.True(t, convert.IsConfigError(err))
			assert.Contains(t, err.Error(), "expected: [H2D D2H]")
			assert.Empty(t, out)
		})
	}
}

func TestConverterRequiresValue(t *testing.T) {
	out, err := runConverter(t, "-t", "H2D")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"value"`)
	assert.Empty(t, out)
}

func TestConverterRejectsPositionalArgs(t *testing.T) {
	_, err := runConverter(t, "-v", "1", "extra")
	require.Error(t, err)
}

func TestConverterEmptyValueFailsAtExecution(t *testing.T) {
	_, err := runConverter(t, "-v", "")
	require.Error(t, err)
	assert.True(t, convert.IsParseError(err))
}

func TestConverterFreshStatePerInvocation(t *testing.T) {
	out, err := runConverter(t, "-t", "D2H", "-v", "16")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	// A new command must not remember the previous type.
	out, err = runConverter(t, "-v", "10")
	require.NoError(t, err)
	assert.Equal(t, "16\n", out)
}

func TestConverterDebugLogging(t *testing.T) {
	var logs, out bytes.Buffer
	cmd := NewConverter(Options{Logger: logging.NewWithWriter(&logs, true)})
	cmd.SetArgs([]string{"-t", "D2H", "-v", "26"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1a\n", out.String())
	assert.True(t, strings.Contains(logs.String(), "mode=D2H"), logs.String())
}
