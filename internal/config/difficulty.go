package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// ApplySnakePreset modifies the speed curve based on a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMS = 150
		cfg.Speed.IncrementMS = 5
		cfg.Speed.MinMS = 60
		cfg.Bonus.DurationMS = 8000
	case DifficultyHard:
		cfg.Speed.InitialMS = 70
		cfg.Speed.IncrementMS = 5
		cfg.Speed.MinMS = 20
		cfg.Bonus.DurationMS = 3500
	}
}
