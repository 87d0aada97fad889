// Package shell contains the interactive and batch front ends of the
// calculator.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/calc"
)

// QuitCommand ends an interactive session.
const QuitCommand = "quit"

// Prompt is the interactive prompt.
const Prompt = "> "

// LineReader reads one line of input after displaying a prompt.
// *liner.State implements LineReader.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historian is implemented by line readers with editable history, like
// *liner.State.
type historian interface {
	AppendHistory(item string)
}

// contextReader is implemented by line readers whose reads can be abandoned
// when a context is done.
type contextReader interface {
	PromptContext(ctx context.Context, prompt string) (string, error)
}

// ScanReader is a LineReader for input that is not a terminal. It writes the
// prompt only if Echo is non-nil. Lines have no length limit.
type ScanReader struct {
	Echo io.Writer

	r     *bufio.Reader
	once  sync.Once
	lines chan string
	// err is the error that ended the input. It is set before lines is
	// closed.
	err error
}

// NewScanReader creates a LineReader reading lines from r.
func NewScanReader(r io.Reader) *ScanReader {
	return &ScanReader{r: bufio.NewReader(r), lines: make(chan string)}
}

// Prompt returns the next line of input, or io.EOF at the end of input.
func (s *ScanReader) Prompt(prompt string) (string, error) {
	return s.PromptContext(context.Background(), prompt)
}

// PromptContext is like Prompt, but returns ctx's error if ctx is done before
// a line is available. The pending line is not lost; a later call returns it.
func (s *ScanReader) PromptContext(ctx context.Context, prompt string) (string, error) {
	if s.Echo != nil {
		fmt.Fprint(s.Echo, prompt)
	}
	s.once.Do(func() { go s.scan() })
	select {
	case line, ok := <-s.lines:
		if !ok {
			return "", s.err
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// scan sends lines until the input ends.
func (s *ScanReader) scan() {
	for {
		line, err := s.r.ReadString('\n')
		if err == nil || line != "" {
			s.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			s.err = err
			close(s.lines)
			return
		}
	}
}

// Session is an interactive calculator session.
type Session struct {
	// In supplies input lines.
	In LineReader
	// Out receives results and error messages.
	Out io.Writer
	// Format is the fmt verb used to print results. Default is %g.
	Format string
	// Log receives debug logs of each evaluation. Default is slog.Default().
	Log *slog.Logger
}

// Run reads and evaluates lines until the quit command, the end of input, or
// an aborted prompt. Blank lines are skipped. Each result is printed as
// "= result" and each failure as "Error: message"; failures never end the
// session. The returned error is non-nil only if reading input fails or ctx
// is cancelled. A LineReader with a PromptContext method, like ScanReader,
// stops waiting for input as soon as ctx is done.
func (s *Session) Run(ctx context.Context) error {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	verb := s.Format
	if verb == "" {
		verb = "%g"
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		var err error
		if r, ok := s.In.(contextReader); ok {
			line, err = r.PromptContext(ctx, Prompt)
		} else {
			line, err = s.In.Prompt(Prompt)
		}
		switch {
		case err == nil: // do nothing
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == QuitCommand {
			return nil
		}
		if line == "" {
			continue
		}
		r, err := calc.Eval(line)
		if err != nil {
			log.DebugContext(ctx, "evaluation failed", "expr", line, "kind", calc.KindOf(err).String(), "err", err)
			fmt.Fprintln(s.Out, color.RedString("Error: %v", err))
			continue
		}
		log.DebugContext(ctx, "evaluated", "expr", line, "result", r)
		fmt.Fprintf(s.Out, "= "+verb+"\n", r)
		if h, ok := s.In.(historian); ok {
			h.AppendHistory(line)
		}
	}
}
