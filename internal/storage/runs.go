package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished session with its end-of-run statistics.
type Run struct {
	ID        int64
	RunID     uuid.UUID
	GameID    string
	Score     int
	Kills     int
	Ticks     int64
	ArenaW    int // Arena size when the run ended
	ArenaH    int
	CreatedAt time.Time
}

// SaveRun records a finished run. A nil RunID is replaced with a fresh
// random one; the stored ID is returned.
func (s *Store) SaveRun(run Run) (uuid.UUID, error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, kills, ticks, arena_w, arena_h)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID.String(), run.GameID, run.Score, run.Kills, run.Ticks, run.ArenaW, run.ArenaH,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.RunID, nil
}

// RecentRuns returns the latest runs for a game, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, score, kills, ticks, arena_w, arena_h, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var runID string
		var createdAt any
		if err := rows.Scan(&r.ID, &runID, &r.GameID, &r.Score, &r.Kills, &r.Ticks, &r.ArenaW, &r.ArenaH, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		if r.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", runID, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
