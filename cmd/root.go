package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/torchtimer/internal/audio"
	"github.com/xolan/torchtimer/internal/board"
	"github.com/xolan/torchtimer/internal/service"
	"github.com/xolan/torchtimer/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "torchtimer",
	Short: "A countdown board for tabletop torches and other timed effects",
	Long: `torchtimer keeps a board of countdown timers on one screen.

Running it with no arguments opens the interactive board. Spawn as many
timers as you need, start and pause them all with one key, nudge them in
bulk, and pin individual timers so board-wide controls skip them. A timer
that reaches zero stays on the board at 00:00 and sounds a cue once.

The board is saved when you quit and restored on the next start, storing
remaining durations rather than wall-clock deadlines. Time spent closed
does not burn your torches.

Keyboard shortcuts (inside the board):
  space      Start/pause all timers
  n/o        New timer (at end / below the cursor)
  d          Delete the selected timer
  p          Pin a timer so bulk controls skip it
  a/x, +/-   Add/remove time (one timer / all timers)
  ?          Full keyboard reference
  q          Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runBoard()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"torchtimer version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runBoard initializes services and runs the interactive board
func runBoard() {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error initializing services: %v\n", err)
		deps.Exit(1)
		return
	}

	var cue board.Cue = audio.NopCue{}
	if services.Config.Get().Sound {
		cue = audio.New()
	}

	if err := tui.Run(services, cue); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running board: %v\n", err)
		deps.Exit(1)
		return
	}
}
