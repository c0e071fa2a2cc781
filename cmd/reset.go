package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/torchtimer/internal/storage"
)

var resetYesFlag bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved timer board",
	Long: `Delete the saved timer board from disk.
This action cannot be undone. A confirmation prompt will be shown
unless --yes is specified.

The next start of torchtimer comes up with a fresh single-timer board
built from the configured template.

Example:
  torchtimer reset
  torchtimer reset --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		resetBoard()
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// resetBoard deletes the persisted board state
func resetBoard() {
	statePath, err := deps.StatePath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to get state path: %v\n", err)
		deps.Exit(1)
		return
	}

	has, err := storage.HasBoardState(statePath)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to check board state: %v\n", err)
		deps.Exit(1)
		return
	}
	if !has {
		_, _ = fmt.Fprintln(deps.Stdout, "No saved board to reset")
		return
	}

	// Prompt for confirmation unless --yes flag is set
	if !resetYesFlag {
		if !promptResetConfirmation() {
			_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
			return
		}
	}

	if err := storage.ClearBoardState(statePath); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to reset board: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Board reset")
}

// promptResetConfirmation asks the user to confirm the reset operation
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptResetConfirmation() bool {
	_, _ = fmt.Fprint(deps.Stdout, "Delete the saved timer board? This cannot be undone. [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
