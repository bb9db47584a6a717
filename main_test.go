package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, isolating logs and environment
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(envProvider, "")
	t.Setenv(envStyle, "")

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Print(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\nb\nc")
	b := writeFile(t, dir, "b.txt", "a\nX\nc")

	for _, provider := range ProviderNames() {
		t.Run(provider, func(t *testing.T) {
			out, err := execute(t, "", "--print", "--no-color", "--width", "43", "--provider", provider, a, b)
			require.NoError(t, err)

			assert.Contains(t, out, "a.txt")
			assert.Contains(t, out, "1 removals")
			assert.Contains(t, out, "   2 b               │    2 X")
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestCLI_ExitCode(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "same\n")
	b := writeFile(t, dir, "b.txt", "different\n")

	_, err := execute(t, "", "-p", "-e", "--no-color", a, b)
	assert.ErrorIs(t, err, errDifferencesFound)

	out, err := execute(t, "", "-p", "-e", "--no-color", a, a)
	require.NoError(t, err)
	assert.Contains(t, out, "No Differences Found")
}

func TestCLI_Stdin(t *testing.T) {
	b := writeFile(t, t.TempDir(), "b.txt", "one\ntwo\n")

	out, err := execute(t, "one\n", "--print", "--no-color", "-w", "60", "-", b)
	require.NoError(t, err)
	assert.Contains(t, out, "stdin")
	assert.Contains(t, out, "1 additions")
}

func TestCLI_Revision(t *testing.T) {
	dir := setupRepo(t, map[string]string{"main.go": "package main\n"})
	path := writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")

	out, err := execute(t, "", "--print", "--no-color", "--rev", "HEAD", path)
	require.NoError(t, err)
	assert.Contains(t, out, "HEAD:main.go")
	assert.Contains(t, out, "2 additions")
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"print without inputs", []string{"--print"}, ErrNoInput.Error()},
		{"exit code without print", []string{"--exit-code", "a", "b"}, "requires --print"},
		{"unknown provider", []string{"--print", "--provider", "patience", "a", "b"}, "unknown provider"},
		{"too many args", []string{"a", "b", "c"}, "accepts at most 2 arg(s)"},
		{"missing file", []string{"--print", "missing-a", "missing-b"}, "no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, appVersion)
}

func TestCLI_Help(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	for _, flag := range []string{"--print", "--exit-code", "--provider", "--rev", "--patch", "--watch", "--style"} {
		assert.Contains(t, out, flag)
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, defaultPrintWide, terminalWidth(&bytes.Buffer{}))
}

func TestReportLoggerStats(t *testing.T) {
	t.Parallel()

	var logs, out bytes.Buffer
	logger := NewLogger(INFO, &logs)

	reportLoggerStats(&out, logger)
	assert.Empty(t, out.String())

	logger.Warn("w", nil, nil)
	logger.Error("e", nil, nil)
	reportLoggerStats(&out, logger)
	assert.Contains(t, out.String(), "completed with 1 error(s)")
	assert.Contains(t, out.String(), "warnings: 1")
}
