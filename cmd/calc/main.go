// Command calc is a crash-resilient interactive command-line calculator.
// See SPEC_FULL.md for the full command and replay contract.
package main

import (
	"log/slog"
	"os"

	"github.com/finkrer/calc/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	cli.Execute()
}
