package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Speed: SpeedConfig{
			InitialMS:   100,
			IncrementMS: 5,
			StepScore:   50,
			MinMS:       30,
		},
		Scoring: ScoringConfig{
			Food:     10,
			WinBonus: 100,
		},
		Bonus: BonusConfig{
			Interval:   4,
			DurationMS: 5000,
			MaxScore:   50,
			MinScore:   10,
		},
		Leaderboard: LeaderboardConfig{
			Backend:  "json",
			Path:     "~/.snake/scores.json",
			Capacity: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
