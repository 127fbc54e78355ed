package config

import "fmt"

// Difficulty is a named difficulty preset. It selects the power-up budgets
// a game starts with; the spawn curve itself adapts to play, not to the
// preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty name from a flag or config value.
// An empty string means DifficultyMedium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// BudgetFor returns the power-up budget for the given difficulty.
func (c GameConfig) BudgetFor(d Difficulty) Budget {
	switch d {
	case DifficultyEasy:
		return c.PowerUps.Easy
	case DifficultyHard:
		return c.PowerUps.Hard
	default:
		return c.PowerUps.Medium
	}
}
