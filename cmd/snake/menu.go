package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// runMenu loops between the main menu, games and the leaderboard until the
// player picks Quit.
func runMenu(cmd *cobra.Command, _ []string) {
	a, err := newApp(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.logger.Info("session started")
	defer a.logger.Info("session ended")

	for {
		menuResult, err := tui.RunMenu(a.runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Pick up any size changes
		a.runtime = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuNewGame:
			if err := a.playOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}

		case tui.MenuLeaderboard:
			goBack, err := a.showLeaderboard()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return // User quit from leaderboard
			}

		default:
			return
		}
	}
}
