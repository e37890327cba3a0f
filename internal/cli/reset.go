package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finkrer/calc/internal/calcstate"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the storage blob without starting an interactive session",
	Long: `reset overwrites the storage blob with an empty byte sequence,
the same fresh-session marker a clean "exit" produces. It is an operator
escape hatch for the documented ReadNumber sharp edge (spec.md 9): a
session stuck replaying a malformed number forever.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	if !resetYes {
		fmt.Fprint(cmd.OutOrStdout(), "This will discard the current session. Continue? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	return calcstate.ClearStorage(backend)
}
