// Package main implements the quadra CLI: numerical integration of the
// catalog integrands with any of the four engines.
package main

import (
	"context"
	"os"
	"os/signal"
)

// version information
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
