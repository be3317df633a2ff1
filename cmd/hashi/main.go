// Command hashi solves Hashiwokakero puzzles by constraint propagation.
//
//	hashi solve puzzle.txt other.yaml
//	hashi render puzzle.txt
//	hashi convert puzzle.txt --to yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
