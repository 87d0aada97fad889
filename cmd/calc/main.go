package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	verb    string
)

// errFailed reports that some expressions failed to evaluate. The failures
// themselves have already been printed.
var errFailed = errors.New("some expressions failed")

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate arithmetic expressions",
	Long: `calc evaluates arithmetic expressions with + - * /, parentheses,
unary minus, and decimal numbers.

With no subcommand, calc shows the demo and then reads expressions
interactively, the same as 'calc repl'.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(h))
	},
	RunE: runRepl,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each evaluation to stderr")
	rootCmd.PersistentFlags().StringVar(&verb, "fmt", "%g", "result formatting string")

	home, _ := os.UserHomeDir()
	hist := ""
	if home != "" {
		hist = filepath.Join(home, historyFile)
	}
	for _, cmd := range []*cobra.Command{rootCmd, replCmd} {
		cmd.Flags().StringVar(&historyPath, "history", hist, "file for interactive history (empty to disable)")
		cmd.Flags().BoolVar(&noDemo, "no-demo", false, "skip the demo before interactive mode")
	}

	evalCmd.Flags().StringVar(&inName, "in", "", `input file, one expression per line ("-" for stdin; default stdin if no args given)`)
	evalCmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	evalCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "maximum concurrent evaluations (0 for no limit)")

	rootCmd.AddCommand(replCmd, demoCmd, evalCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	// A second interrupt gets the default behavior.
	context.AfterFunc(ctx, stop)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	switch {
	case err == nil: // do nothing
	case errors.Is(err, errFailed):
		os.Exit(1)
	case errors.Is(err, context.Canceled):
		// Interrupted.
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}
