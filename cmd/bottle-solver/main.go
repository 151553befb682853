// Command bottle-solver finds shortest pour sequences for liquid-sorting
// puzzles.
//
//	bottle-solver levels
//	bottle-solver solve sortpuz-119
//	bottle-solver solve --strategy bfs --verify ./my-level.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
