package main

import (
	"context"
	"os"

	"github.com/halcyon-ops/hourglass/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
