package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvinuesa/hexconv/internal/convert"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestConverterCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"H2D", []string{"converter", "-t", "H2D", "-v", "1A"}, "26\n"},
		{"D2H", []string{"converter", "-t", "D2H", "-v", "26"}, "1a\n"},
		{"D2H negative", []string{"converter", "-t", "D2H", "-v", "-1"}, "ffffffff\n"},
		{"default type", []string{"converter", "--value", "ff"}, "255\n"},
		{"debug flag", []string{"--debug", "converter", "-v", "10"}, "16\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConverterCommandErrors(t *testing.T) {
	t.Run("malformed value", func(t *testing.T) {
		out, _, err := execute(t, "", "converter", "-t", "H2D", "-v", "zz")
		require.Error(t, err)
		assert.True(t, convert.IsParseError(err))
		assert.Empty(t, out)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, _, err := execute(t, "", "converter", "-t", "h2d", "-v", "1")
		require.Error(t, err)
		assert.True(t, convert.IsConfigError(err))
	})

	t.Run("missing value", func(t *testing.T) {
		_, _, err := execute(t, "", "converter", "-t", "D2H")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"value"`)
	})
}

func TestConverterCommandHelp(t *testing.T) {
	out, _, err := execute(t, "", "converter", "-H", "-v", "zz")
	require.NoError(t, err)
	assert.Contains(t, out, "hexconv converter [flags]")
	assert.Contains(t, out, "H2D")
}

func TestShellCommand(t *testing.T) {
	stdin := strings.Join([]string{
		"converter -t H2D -v 1A",
		"converter -t H2D -v zz",
		"converter -t D2H -v 26",
		"exit",
		"converter -v 1",
	}, "\n")

	out, errOut, err := execute(t, stdin, "shell")
	require.NoError(t, err)
	assert.Equal(t, "26\n1a\n", out)
	assert.Contains(t, errOut, "Error:")
	assert.Contains(t, errOut, `"zz"`)
}

func TestShellCommandEmptyInput(t *testing.T) {
	out, errOut, err := execute(t, "", "shell")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestModesCommand(t *testing.T) {
	out, _, err := execute(t, "", "modes")
	require.NoError(t, err)
	assert.Contains(t, out, "H2D")
	assert.Contains(t, out, "D2H")
	assert.Contains(t, out, "Hexadecimal to Decimal Converter (default)")
	assert.Less(t, strings.Index(out, "H2D"), strings.Index(out, "D2H"))
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hexconv "+Version)
	assert.Contains(t, out, "Go version:")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "", "frobnicate")
	require.Error(t, err)
}
