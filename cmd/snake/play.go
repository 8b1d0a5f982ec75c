package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game without the menu",
	Long: `Start a game straight away. A qualifying score still gets the name
prompt and is saved to the leaderboard.

Difficulty options:
  easy   - Slower start, longer bonus timer
  normal - Config values as loaded
  hard   - Faster start and floor, shorter bonus timer

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --width 20 --height 12`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	a, err := newApp(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	playErr := a.playOnce()

	// Close before potential exit
	a.Close()

	if playErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", playErr)
		os.Exit(1)
	}
}
