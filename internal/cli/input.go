package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/svgpath"
	"honnef.co/go/svgpath/internal/diag"
	"honnef.co/go/svgpath/internal/logging"
)

type input struct {
	name string
	data string
}

// readInputs collects the inputs of a command: the -e expressions, then the
// files named by args. "-" and an empty argument list read standard input.
func (a *app) readInputs(cmd *cobra.Command, args, exprs []string) ([]input, error) {
	var inputs []input
	for i, e := range exprs {
		inputs = append(inputs, input{name: fmt.Sprintf("expr#%d", i+1), data: e})
	}
	if len(args) == 0 && len(exprs) == 0 {
		if isTerminal(a.streams.In) {
			return nil, noInputError(cmd)
		}
		args = []string{"-"}
	}
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(a.streams.In)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't read %s", name)
		}
		inputs = append(inputs, input{name: name, data: string(data)})
	}
	return inputs, nil
}

// noInputError prints the usage of cmd and returns the error for a command
// that was given nothing to read.
func noInputError(cmd *cobra.Command) error {
	err := &ExitError{Code: 2, Message: "no input: pass files, -e DATA, or pipe data into standard input"}
	if uerr := cmd.Usage(); uerr != nil {
		err.Message += " (couldn't print usage: " + uerr.Error() + ")"
	}
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type result struct {
	out string
	// A data error. out may still hold the output for the valid prefix of
	// the input.
	err error
}

// process runs fn on up to jobs inputs at a time. The results are in the
// order of inputs.
func process(ctx context.Context, jobs int, inputs []input, fn func(input) (string, error)) ([]result, error) {
	results := make([]result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logging.FromContext(ctx).Debug("processing input", "input", in.name, "bytes", len(in.data))
			out, err := fn(in)
			results[i] = result{out: out, err: err}
			return nil
		})
	}
	return results, g.Wait()
}

// report writes the results in order. Data errors are printed as
// diagnostics and make report return an exit code of 1.
func (a *app) report(ctx context.Context, inputs []input, results []result) error {
	logger := logging.FromContext(ctx)
	printer := diag.NewPrinter(a.streams.Err)
	failed := 0
	for i, r := range results {
		if r.out != "" {
			fmt.Fprintln(a.streams.Out, r.out)
		}
		if r.err == nil {
			continue
		}
		failed++
		attrs := []any{"input", inputs[i].name, "error", r.err}
		var perr *svgpath.Error
		if errors.As(r.err, &perr) && perr.Pos > 0 {
			attrs = append(attrs, "pos", perr.Pos)
		}
		logger.Warn("malformed input", attrs...)
		printer.Print(inputs[i].name, inputs[i].data, r.err)
	}
	if failed > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d inputs are malformed", failed, len(inputs))}
	}
	return nil
}

func (a *app) run(cmd *cobra.Command, args, exprs []string, fn func(input) (string, error)) error {
	inputs, err := a.readInputs(cmd, args, exprs)
	if err != nil {
		return err
	}
	results, err := process(cmd.Context(), a.cfg.Jobs, inputs, fn)
	if err != nil {
		return err
	}
	return a.report(cmd.Context(), inputs, results)
}
