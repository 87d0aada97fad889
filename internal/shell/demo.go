package shell

import (
	"context"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Samples are the expressions shown by Demo.
var Samples = []string{
	"2+3",
	"10-4",
	"3*4",
	"8/2",
	"2+3*4",
	"(2+3)*4",
	"2.5+1.5",
	"-5+3",
	"(2+3)*(4-2)/3",
	"2*-3",
	"5/0",
	"(2+3",
	"2+*3",
}

// Demo evaluates Samples and writes them to w as a table, one row per
// expression with its result or error.
func Demo(ctx context.Context, w io.Writer, verb string) ([]Result, error) {
	if verb == "" {
		verb = "%g"
	}
	res, err := EvalAll(ctx, Samples, 1)
	if err != nil {
		return nil, err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Expression", "Result"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range res {
		table.Append([]string{r.Expr, r.Format(verb)})
	}
	table.Render()
	return res, nil
}
