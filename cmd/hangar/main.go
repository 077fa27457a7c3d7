package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/hangar/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// fang prints the error itself
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
