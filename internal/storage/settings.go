package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const settingsKey = "settings"

// Settings are the player preferences. They are stored as one JSON blob so
// new fields need no migration.
type Settings struct {
	BGMVolume  float64 `json:"bgmVolume"`
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Difficulty string  `json:"difficulty"`
}

// DefaultSettings returns the preferences used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		BGMVolume:  0.5,
		SFXVolume:  0.7,
		Difficulty: "normal",
	}
}

// LoadSettings returns the stored preferences. A missing or malformed blob
// yields the defaults; only database failures are errors.
func (s *Store) LoadSettings() (Settings, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, settingsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("storage: cannot load settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings replaces the stored preferences.
func (s *Store) SaveSettings(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	return s.putSetting(settingsKey, string(data))
}

func (s *Store) putSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}
