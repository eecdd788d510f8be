package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/kickoff/internal/cli"
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cli.Options{})
	if err := app.RunContext(ctx, os.Args); err != nil {
		// The session expiry notice has already been printed.
		if !errors.Is(err, kickoffsdk.ErrSessionExpired) {
			fmt.Fprintf(os.Stderr, "kickoff: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
