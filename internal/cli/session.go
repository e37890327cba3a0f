package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finkrer/calc/internal/calcstate"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Print the current session's decoded state without mutating storage",
	Long: `session reads the storage blob and prints the decoded
SessionState's diagnostic fields (tag, queue lengths, skip/emitted
counters, and the last random seed). It never writes to storage - it is
a read-only inspection tool for stuck or crashed sessions.`,
	RunE: runSessionInspect,
}

func runSessionInspect(cmd *cobra.Command, args []string) error {
	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	state, err := calcstate.LoadOrDefault(backend)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "tag:                %s\n", state.Tag)
	fmt.Fprintf(cmd.OutOrStdout(), "loaded_queries:     %d pending replay line(s)\n", len(state.LoadedQueries))
	fmt.Fprintf(cmd.OutOrStdout(), "queries_so_far:     %d\n", len(state.QueriesSoFar))
	fmt.Fprintf(cmd.OutOrStdout(), "lines_to_skip:      %d\n", state.LinesToSkip)
	fmt.Fprintf(cmd.OutOrStdout(), "lines_so_far:       %d\n", state.LinesSoFar)
	if state.LastRandomNumber != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "last_random_number: %d\n", *state.LastRandomNumber)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "last_random_number: (absent)")
	}
	return nil
}
