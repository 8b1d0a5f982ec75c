// snake is a terminal Snake game with wrap-around walls, timed bonus food
// and a persisted top-10 leaderboard.
//
// Usage:
//
//	snake                 - Start the main menu
//	snake play            - Start a game directly
//	snake scores          - Print the leaderboard
//
// Global flags:
//
//	-w, --width <n>       - Board width in cells (min 10)
//	-H, --height <n>      - Board height in cells (min 10)
//	-s, --speed <ms>      - Initial frame period in milliseconds (min 10)
//	--seed <value>        - RNG seed for reproducible food placement
//	--scores <path>       - Leaderboard path (default: ~/.snake/scores.json)
//	--store <kind>        - Leaderboard backend: json or sqlite
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

var (
	// Global flags
	flagWidth      int
	flagHeight     int
	flagSpeed      int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagScores     string
	flagStore      string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake in your terminal. The board wraps around at every edge, so the
only way to lose is to run into yourself. Every fourth food brings a 2x2
bonus worth more the sooner you reach it.

Controls:
  Arrows/WASD  - Steer
  Q/Esc        - Quit the game
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots

Examples:
  snake
  snake --width 60 --height 25
  snake play --difficulty hard
  snake scores --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&flagWidth, "width", "w", 0, "Board width in cells (default from config: 40)")
	flags.IntVarP(&flagHeight, "height", "H", 0, "Board height in cells (default from config: 20)")
	flags.IntVarP(&flagSpeed, "speed", "s", 0, "Initial frame period in ms (default from config: 100)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagScores, "scores", "", "Leaderboard path (default from config: ~/.snake/scores.json)")
	flags.StringVar(&flagStore, "store", "", "Leaderboard backend: "+strings.Join(leaderboard.Backends(), ", "))
	flags.StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file path")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
