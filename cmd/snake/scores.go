package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Print the top scores.

Examples:
  snake scores
  snake scores --scores ./scores.json
  snake scores --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

// lastUpdater is implemented by backends that track write times.
type lastUpdater interface {
	LastUpdated() (time.Time, error)
}

func runScores(cmd *cobra.Command, _ []string) {
	a, err := newApp(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	entries := a.board.TopScores(0)

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores yet!")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %5s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-10s  %5s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4s  %-10s  %5d\n", fmt.Sprintf("%d.", i+1), e.Name, e.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", entries[0].Score)

	if lu, ok := a.backend.(lastUpdater); ok {
		if t, err := lu.LastUpdated(); err == nil && !t.IsZero() {
			fmt.Printf("Last updated: %s\n", t.Local().Format("2006-01-02 15:04"))
		}
	}
}
