package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// PlayerStats are the lifetime counters of one game.
type PlayerStats struct {
	TotalGames  int
	BestScore   int
	TotalBricks int
}

// LoadStats returns the stored counters for a game, or zero values if
// none were saved yet.
func (s *Store) LoadStats(gameID string) (PlayerStats, error) {
	var ps PlayerStats
	err := s.db.QueryRow(
		`SELECT total_games, best_score, total_bricks FROM stats WHERE game_id = ?`,
		gameID,
	).Scan(&ps.TotalGames, &ps.BestScore, &ps.TotalBricks)

	if errors.Is(err, sql.ErrNoRows) {
		return PlayerStats{}, nil
	}
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot load stats: %w", err)
	}
	return ps, nil
}

// AddStats adds a session's increments to the stored counters. Game and
// brick totals are summed in SQL and the best score is kept as a maximum,
// so concurrent sessions on the same database never lose each other's
// updates.
func (s *Store) AddStats(gameID string, delta PlayerStats) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (game_id, total_games, best_score, total_bricks)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			total_games = stats.total_games + excluded.total_games,
			best_score = MAX(stats.best_score, excluded.best_score),
			total_bricks = stats.total_bricks + excluded.total_bricks,
			updated_at = CURRENT_TIMESTAMP`,
		gameID, delta.TotalGames, delta.BestScore, delta.TotalBricks,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save stats: %w", err)
	}
	return nil
}
