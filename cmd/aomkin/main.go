// Command aomkin runs steady-state kinetics sweeps of the ER and LH
// oxidation mechanisms.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/aomkin/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "aomkin: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
