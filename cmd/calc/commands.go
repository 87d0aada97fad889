package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/shell"
)

const historyFile = ".calc_history"

var (
	historyPath string
	noDemo      bool

	inName string
	echo   bool
	jobs   int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read and evaluate expressions interactively",
	Long: `Read and evaluate expressions interactively, one per line.
Enter 'quit' or end the input to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Evaluate a fixed list of sample expressions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := shell.Demo(cmd.Context(), cmd.OutOrStdout(), verb)
		return err
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [expr ...]",
	Short: "Evaluate expressions from arguments or input lines",
	Long: `Evaluate each argument as an expression. With --in, or with no
arguments, also evaluate each non-blank line of the input.`,
	RunE: runEval,
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if !noDemo {
		fmt.Fprintln(out, "Calculator Demo")
		if _, err := shell.Demo(ctx, out, verb); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	s := shell.Session{Out: out, Format: verb, Log: slog.Default()}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		s.In = shell.NewScanReader(in)
		return s.Run(ctx)
	}

	fmt.Fprintf(out, "Interactive mode (enter expressions, %q to exit):\n", shell.QuitCommand)
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				slog.Warn("reading history", "path", historyPath, "err", err)
			}
			f.Close()
		}
		defer saveHistory(ln, historyPath)
	}
	s.In = ln
	return s.Run(ctx)
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("saving history", "path", path, "err", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		slog.Warn("saving history", "path", path, "err", err)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	exprs := args
	if inName != "" || len(args) == 0 {
		lines, err := readLines(cmd.Context(), inName, cmd.InOrStdin())
		if err != nil {
			return err
		}
		exprs = append(exprs, lines...)
	}
	res, err := shell.EvalAll(cmd.Context(), exprs, jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range res {
		if echo {
			if a, err := calc.Parse(r.Expr); err == nil {
				fmt.Fprintf(out, "%v : ", a)
			}
		}
		if r.Err != nil {
			failed++
			fmt.Fprintln(out, color.RedString("%s", r.Format(verb)))
			continue
		}
		fmt.Fprintln(out, r.Format(verb))
	}
	slog.Debug("batch finished", "exprs", len(res), "failed", failed)
	if failed > 0 {
		return errFailed
	}
	return nil
}

// readLines reads the non-blank lines of the named file, or of stdin if name
// is empty or "-". Reading stops early if ctx is done.
func readLines(ctx context.Context, name string, stdin io.Reader) ([]string, error) {
	in := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	} else {
		name = "stdin"
	}
	var lines []string
	r := shell.NewScanReader(in)
	for {
		line, err := r.PromptContext(ctx, "")
		switch {
		case err == nil: // do nothing
		case errors.Is(err, io.EOF):
			return lines, nil
		default:
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
}
