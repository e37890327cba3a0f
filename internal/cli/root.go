// Package cli defines the Cobra command tree for the calc CLI: the
// interactive calculator session plus two operator-facing diagnostic
// subcommands (see SPEC_FULL.md's "Supplemented features").
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finkrer/calc/internal/calcstate"
	"github.com/finkrer/calc/internal/console"
	"github.com/finkrer/calc/internal/interp"
	"github.com/finkrer/calc/internal/storage"
)

var (
	storagePathFlag string
	version         = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "A crash-resilient command-line calculator",
	Long: `calc is an interactive calculator (add, median, rand, help, exit)
whose session progress is durably persisted after every observable
interaction, so a killed and restarted process resumes exactly where it
left off.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSession,
}

// Execute runs the root command. Called from main. The four sentinel
// errors spec.md 7 names are distinguished here so the process's exit
// message identifies which failure class ended the session.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, calcstate.ErrCorruptState):
			fmt.Fprintln(os.Stderr, "Corrupt session state:", err)
		case errors.Is(err, interp.ErrMalformedNumber):
			fmt.Fprintln(os.Stderr, "Malformed number in input:", err)
		case errors.Is(err, storage.ErrStorageIO):
			fmt.Fprintln(os.Stderr, "Storage error:", err)
		case errors.Is(err, console.ErrConsoleIO):
			fmt.Fprintln(os.Stderr, "Console I/O error:", err)
		default:
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storagePathFlag, "storage", "", "Path to the storage blob (overrides config and the default location)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(resetCmd)
}
