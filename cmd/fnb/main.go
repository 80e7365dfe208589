package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/preston-bernstein/friday-night-bytes/internal/cli"
	"github.com/preston-bernstein/friday-night-bytes/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand(cli.DefaultEnv())
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
