package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one finished run in the history.
type Run struct {
	ID       int64
	Course   string
	Player   string // SSH user, empty for local play
	Score    int
	PlayedAt time.Time
}

// CourseStats aggregates the run history of one course.
type CourseStats struct {
	Course  string
	Runs    int
	Best    int
	Mean    float64
	Total   int64
	LastRun time.Time
}

// SaveScore appends a finished run and returns its row ID.
func (s *Store) SaveScore(course, player string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO runs (course, player, score) VALUES (?, ?, ?)`, course, player, score)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best runs of course, highest first; ties keep
// insertion order. limit <= 0 returns every run.
func (s *Store) TopScores(course string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(`SELECT id, course, player, score, played_at FROM runs
		WHERE course = ? ORDER BY score DESC, id ASC LIMIT ?`, course, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var at any
		if err := rows.Scan(&r.ID, &r.Course, &r.Player, &r.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.PlayedAt = sqliteTime(at)
		out = append(out, r)
	}
	return out, rows.Err()
}

// HighScore returns the best recorded score of course, 0 when none.
func (s *Store) HighScore(course string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM runs WHERE course = ?`, course).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores drops the history of course together with its stored high
// score key, atomically.
func (s *Store) ClearScores(course, highScoreKey string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clear %s: %w", course, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM runs WHERE course = ?`, course); err != nil {
		return fmt.Errorf("storage: clear %s: %w", course, err)
	}
	if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, highScoreKey); err != nil {
		return fmt.Errorf("storage: clear %s: %w", highScoreKey, err)
	}
	return tx.Commit()
}

const statsColumns = `course, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(played_at)`

// Stats summarises course. An unplayed course yields zero stats.
func (s *Store) Stats(course string) (CourseStats, error) {
	all, err := s.queryStats(`SELECT `+statsColumns+` FROM runs WHERE course = ? GROUP BY course`, course)
	if err != nil {
		return CourseStats{}, err
	}
	if st, ok := all[course]; ok {
		return st, nil
	}
	return CourseStats{Course: course}, nil
}

// AllStats summarises every course with at least one run.
func (s *Store) AllStats() (map[string]CourseStats, error) {
	return s.queryStats(`SELECT ` + statsColumns + ` FROM runs GROUP BY course`)
}

func (s *Store) queryStats(query string, args ...any) (map[string]CourseStats, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]CourseStats)
	for rows.Next() {
		var st CourseStats
		var last any
		if err := rows.Scan(&st.Course, &st.Runs, &st.Best, &st.Mean, &st.Total, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.LastRun = sqliteTime(last)
		out[st.Course] = st
	}
	return out, rows.Err()
}

// sqliteTime accepts both driver-decoded times and raw SQLite text.
func sqliteTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
