package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/antcolony/internal/cli"
)

var version string

func main() {
	// Ctrl+C cancels the run; the coordinator reports it as a communication failure.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewRootCommand(version).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
