package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults drifted from DefaultBreakoutConfig():\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadBreakoutCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakout.yaml")
	data := "difficulties:\n  hard:\n    ball_speed: 9\n    paddle_width: 60\n    brick_rows: 8\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if got := cfg.Difficulties.For(DifficultyHard); got.BallSpeed != 9 || got.BrickRows != 8 {
		t.Errorf("hard = %+v, expected override", got)
	}
	if cfg.Bricks.Cols != 9 || cfg.Difficulties.Easy.BrickRows != 3 {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed yaml", "field: [", "failed to parse"},
		{"invalid values", "items:\n  drop_chance: 2\n", "drop chance"},
		{"lives above max", "game:\n  initial_lives: 6\n", "lives"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadBreakout(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadBreakout() error = %v, expected it to mention %q", err, tc.want)
			}
		})
	}

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"", DifficultyNormal, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestDifficultyTable(t *testing.T) {
	table := DefaultBreakoutConfig().Difficulties

	tests := []struct {
		preset DifficultyPreset
		want   DifficultySetting
	}{
		{DifficultyEasy, DifficultySetting{BallSpeed: 4, PaddleWidth: 120, BrickRows: 3}},
		{DifficultyNormal, DifficultySetting{BallSpeed: 5, PaddleWidth: 100, BrickRows: 5}},
		{DifficultyHard, DifficultySetting{BallSpeed: 7, PaddleWidth: 80, BrickRows: 7}},
	}

	for _, tc := range tests {
		if got := table.For(tc.preset); got != tc.want {
			t.Errorf("For(%s) = %+v, expected %+v", tc.preset, got, tc.want)
		}
	}
	if DifficultyHard.Next() != DifficultyEasy {
		t.Error("Next() should wrap around")
	}
}
