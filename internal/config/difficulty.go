package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name to a preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// Label returns the display name of the preset.
func (p DifficultyPreset) Label() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Next cycles to the following preset, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	all := Presets()
	for i, q := range all {
		if q == p {
			return all[(i+1)%len(all)]
		}
	}
	return DifficultyNormal
}

// For returns the setting for a preset. Unknown presets use normal.
func (t DifficultyTable) For(p DifficultyPreset) DifficultySetting {
	switch p {
	case DifficultyEasy:
		return t.Easy
	case DifficultyHard:
		return t.Hard
	default:
		return t.Normal
	}
}
