package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// run executes the root command with args and returns its standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	verbose, verb = false, "%g"
	inName, echo, jobs = "", false, 0
	noDemo = false
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, err := run(t, "", "eval", "2+3", "2 * (3 + 4)", "10-4-2")
	require.NoError(t, err)
	assert.Equal(t, "5\n14\n4\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, err := run(t, "2+3*4\n\n  (2+3)*4\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "14\n20\n", out)
}

func TestEvalFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("8/2\n2.5+1.5\n"), 0o644))
	out, err := run(t, "", "eval", "--in", name, "-j", "2", "1+1")
	require.NoError(t, err)
	assert.Equal(t, "2\n4\n4\n", out)
}

func TestEvalFailures(t *testing.T) {
	out, err := run(t, "", "eval", "5/0", "2+2", "2+*3")
	assert.True(t, errors.Is(err, errFailed), "got error %v", err)
	assert.Equal(t, "Error: division by zero\n4\nError: unexpected token \"*\"\n", out)
}

func TestEvalEcho(t *testing.T) {
	out, err := run(t, "", "eval", "--echo", "--", "2+3*4", "-(1)")
	require.NoError(t, err)
	assert.Equal(t, "((2) + ((3) * (4))) : 14\n(-(1)) : -1\n", out)
}

func TestEvalFormat(t *testing.T) {
	out, err := run(t, "", "eval", "--fmt", "%.2f", "10/3")
	require.NoError(t, err)
	assert.Equal(t, "3.33\n", out)
}

func TestEvalMissingFile(t *testing.T) {
	_, err := run(t, "", "eval", "--in", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")
	assert.False(t, errors.Is(err, errFailed))
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "(2+3)*(4-2)/3")
	assert.Contains(t, out, "3.3333333333333335")
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(context.Background(), "-", strings.NewReader(" 1 \n\n\t\n2+2\n3"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2+2", "3"}, lines)

	lines, err = readLines(context.Background(), "", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadLinesCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go pw.Write([]byte("1+1\n"))
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	_, err := readLines(ctx, "-", pr)
	assert.True(t, errors.Is(err, context.Canceled), "got error %v", err)
}

func TestEvalLongLine(t *testing.T) {
	long := strings.Repeat("1+", 40000) + "1"
	out, err := run(t, long+"\n2+2\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "40001\n4\n", out)
}

func TestReplCommand(t *testing.T) {
	out, err := run(t, "2+3\n\n5/0\nquit\n7\n", "repl", "--no-demo")
	require.NoError(t, err)
	assert.Equal(t, "= 5\nError: division by zero\n", out)

	out, err = run(t, "1+1\n", "--no-demo")
	require.NoError(t, err)
	assert.Equal(t, "= 2\n", out)
}

func TestReplDemoBanner(t *testing.T) {
	out, err := run(t, "2*3\n", "repl")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Calculator Demo\n"), "output starts %q", out[:min(len(out), 40)])
	assert.Contains(t, out, "(2+3)*(4-2)/3")
	assert.True(t, strings.HasSuffix(out, "\n\n= 6\n"), "output ends %q", out[max(0, len(out)-40):])
}
