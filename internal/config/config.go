// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Bounds enforced on every loaded configuration.
const (
	MinBoardSize = 10
	MinSpeedMS   = 10
)

var (
	// ErrBoardTooSmall is returned when the board is below MinBoardSize in either dimension.
	ErrBoardTooSmall = errors.New("board too small")
	// ErrSpeedTooLow is returned when a frame period is below MinSpeedMS.
	ErrSpeedTooLow = errors.New("speed too low")
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Speed       SpeedConfig       `yaml:"speed"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Bonus       BonusConfig       `yaml:"bonus"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// BoardConfig defines the wrap-around board size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the frame period curve.
type SpeedConfig struct {
	InitialMS   int `yaml:"initial_ms"`
	IncrementMS int `yaml:"increment_ms"`
	StepScore   int `yaml:"step_score"`
	MinMS       int `yaml:"min_ms"`
}

// ScoringConfig defines fixed score awards.
type ScoringConfig struct {
	Food     int `yaml:"food"`
	WinBonus int `yaml:"win_bonus"`
}

// BonusConfig defines the 2x2 bonus food.
type BonusConfig struct {
	Interval   int `yaml:"interval"`
	DurationMS int `yaml:"duration_ms"`
	MaxScore   int `yaml:"max_score"`
	MinScore   int `yaml:"min_score"`
}

// LeaderboardConfig defines where scores are persisted.
type LeaderboardConfig struct {
	Backend  string `yaml:"backend"` // "json" or "sqlite"
	Path     string `yaml:"path"`
	Capacity int    `yaml:"capacity"`
}

// Duration returns the bonus lifetime.
func (b BonusConfig) Duration() time.Duration {
	return time.Duration(b.DurationMS) * time.Millisecond
}

// Initial returns the frame period at score 0.
func (s SpeedConfig) Initial() time.Duration {
	return time.Duration(s.InitialMS) * time.Millisecond
}

// FramePeriod returns the frame period for a score: the initial period minus
// one increment per full step of score, never below the floor.
func (s SpeedConfig) FramePeriod(score int) time.Duration {
	step := s.StepScore
	if step <= 0 {
		step = 50
	}
	ms := max(s.MinMS, s.InitialMS-(score/step)*s.IncrementMS)
	return time.Duration(ms) * time.Millisecond
}

// Validate checks the configuration against the playable bounds.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < MinBoardSize {
		return fmt.Errorf("config: width must be at least %d, got %d: %w", MinBoardSize, c.Board.Width, ErrBoardTooSmall)
	}
	if c.Board.Height < MinBoardSize {
		return fmt.Errorf("config: height must be at least %d, got %d: %w", MinBoardSize, c.Board.Height, ErrBoardTooSmall)
	}
	if c.Speed.InitialMS < MinSpeedMS {
		return fmt.Errorf("config: speed must be at least %dms, got %dms: %w", MinSpeedMS, c.Speed.InitialMS, ErrSpeedTooLow)
	}
	if c.Speed.MinMS <= 0 || c.Speed.IncrementMS < 0 {
		return fmt.Errorf("config: invalid speed curve (min %dms, increment %dms)", c.Speed.MinMS, c.Speed.IncrementMS)
	}
	if c.Bonus.Interval <= 0 {
		return fmt.Errorf("config: bonus interval must be positive, got %d", c.Bonus.Interval)
	}
	if c.Bonus.DurationMS <= 0 {
		return fmt.Errorf("config: bonus duration must be positive, got %dms", c.Bonus.DurationMS)
	}
	if c.Bonus.MinScore < 0 || c.Bonus.MaxScore < c.Bonus.MinScore {
		return fmt.Errorf("config: bonus score range [%d, %d] is invalid", c.Bonus.MinScore, c.Bonus.MaxScore)
	}
	if c.Scoring.Food < 0 || c.Scoring.WinBonus < 0 {
		return fmt.Errorf("config: scores must not be negative")
	}
	switch c.Leaderboard.Backend {
	case "", "json", "sqlite":
	default:
		return fmt.Errorf("config: unknown leaderboard backend %q", c.Leaderboard.Backend)
	}
	return nil
}
