// Command svgpath formats, measures, transforms and renders SVG path data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"honnef.co/go/svgpath/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Run(ctx, os.Args[1:], cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(os.Stderr, "svgpath:", exitErr.Message)
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "svgpath:", err)
	os.Exit(1)
}
