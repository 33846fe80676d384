// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrMatchNotFound is returned by MatchByID for an unknown match id.
var ErrMatchNotFound = errors.New("storage: match not found")

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID            int64
	MatchID       uuid.UUID
	Variant       string
	BoardSize     int
	Winner        string // "human" or "opponent"
	Turns         int
	HumanShots    int
	HumanHits     int
	OpponentShots int
	OpponentHits  int
	Seed          int64
	Duration      time.Duration
	CreatedAt     time.Time
}

// HumanWon reports whether the human side won the match.
func (r MatchRecord) HumanWon() bool {
	return r.Winner == "human"
}

// Accuracy returns the human hit ratio in [0, 1].
func (r MatchRecord) Accuracy() float64 {
	if r.HumanShots == 0 {
		return 0
	}
	return float64(r.HumanHits) / float64(r.HumanShots)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			winner TEXT NOT NULL,
			turns INTEGER NOT NULL,
			human_shots INTEGER NOT NULL DEFAULT 0,
			human_hits INTEGER NOT NULL DEFAULT 0,
			opponent_shots INTEGER NOT NULL DEFAULT 0,
			opponent_hits INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_variant ON matches(variant);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(variant, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. A zero MatchID is replaced with a
// fresh random one. Returns the match id that was stored.
func (s *Store) SaveMatch(rec MatchRecord) (uuid.UUID, error) {
	if rec.MatchID == uuid.Nil {
		rec.MatchID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, variant, board_size, winner, turns,
		  human_shots, human_hits, opponent_shots, opponent_hits, seed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID.String(),
		rec.Variant,
		rec.BoardSize,
		rec.Winner,
		rec.Turns,
		rec.HumanShots,
		rec.HumanHits,
		rec.OpponentShots,
		rec.OpponentHits,
		rec.Seed,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.MatchID, nil
}

const matchColumns = `id, match_id, variant, board_size, winner, turns,
	human_shots, human_hits, opponent_shots, opponent_hits, seed, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var rec MatchRecord
	var matchID string
	var durationMS int64
	var createdAt any

	if err := row.Scan(
		&rec.ID,
		&matchID,
		&rec.Variant,
		&rec.BoardSize,
		&rec.Winner,
		&rec.Turns,
		&rec.HumanShots,
		&rec.HumanHits,
		&rec.OpponentShots,
		&rec.OpponentHits,
		&rec.Seed,
		&durationMS,
		&createdAt,
	); err != nil {
		return rec, err
	}

	id, err := uuid.Parse(matchID)
	if err != nil {
		return rec, fmt.Errorf("bad match id %q: %w", matchID, err)
	}
	rec.MatchID = id
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentMatches retrieves the latest matches, newest first. An empty
// variant matches every variant.
func (s *Store) RecentMatches(variant string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// MatchByID retrieves a match by its match id.
func (s *Store) MatchByID(id uuid.UUID) (*MatchRecord, error) {
	rec, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		id.String(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// MatchStats contains aggregated results for a variant.
type MatchStats struct {
	Variant    string
	Played     int
	Wins       int
	Losses     int
	AvgTurns   float64
	BestTurns  int // Fewest turns in a won match, 0 if never won
	LastPlayed time.Time
}

// WinRate returns the share of matches the human won.
func (st MatchStats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Played)
}

// Stats retrieves aggregated statistics for a variant. An empty variant
// aggregates every match.
func (s *Store) Stats(variant string) (*MatchStats, error) {
	stats := &MatchStats{Variant: variant}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'human' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(turns), 0),
		        MIN(CASE WHEN winner = 'human' THEN turns END)
		 FROM matches WHERE ? = '' OR variant = ?`,
		variant, variant,
	).Scan(&stats.Played, &stats.Wins, &stats.AvgTurns, &best)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.Losses = stats.Played - stats.Wins
	if best.Valid {
		stats.BestTurns = int(best.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		variant, variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Variants returns every variant that has recorded matches, sorted by name.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM matches ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return variants, nil
}

// ClearMatches deletes all matches of the given variant and returns how
// many were removed.
func (s *Store) ClearMatches(variant string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM matches WHERE variant = ?", variant)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared matches: %w", err)
	}
	return n, nil
}
