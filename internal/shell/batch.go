package shell

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

// Result is the outcome of evaluating one expression.
type Result struct {
	// Expr is the source expression.
	Expr string
	// Value is the result of evaluation. It is zero if Err is not nil.
	Value float64
	// Err is the evaluation error, if any.
	Err error
}

// Format formats the result with the given fmt verb, or as "Error: message"
// if evaluation failed.
func (r Result) Format(verb string) string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return fmt.Sprintf(verb, r.Value)
}

// EvalAll evaluates expressions concurrently on at most jobs goroutines, or
// without limit if jobs <= 0. Results are in the same order as exprs.
// Evaluation failures are reported in each Result; the returned error is only
// for cancellation of ctx before every expression has been evaluated.
func EvalAll(ctx context.Context, exprs []string, jobs int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := make([]Result, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, src := range exprs {
		i, src := i, src
		g.Go(func() error {
			// Expressions not yet started are skipped once ctx is done.
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := calc.Eval(src)
			res[i] = Result{Expr: src, Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
