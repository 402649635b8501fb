// Package storage provides SQLite-based persistence for expedition
// journey logs. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for journey persistence.
type Store struct {
	db *sql.DB
}

// JourneyEntry is the record of one finished (or abandoned) expedition.
type JourneyEntry struct {
	ID        int64
	WorldID   string
	Mode      string // "guided" or "freeroam"
	Nodes     int    // Distinct locations charted
	Edges     int    // Distinct directed links traversed
	Steps     int    // Committed moves
	Resolved  int    // Sites resolved
	Completed bool   // Whether every site was resolved
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS journeys (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world_id TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT 'guided',
			nodes INTEGER NOT NULL,
			edges INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			resolved INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journeys_world_id ON journeys(world_id);
		CREATE INDEX IF NOT EXISTS idx_journeys_top ON journeys(world_id, nodes DESC);
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

// SaveJourney records a finished expedition.
// Returns the ID of the inserted record.
func (s *Store) SaveJourney(e JourneyEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO journeys (world_id, mode, nodes, edges, steps, resolved, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.WorldID, e.Mode, e.Nodes, e.Edges, e.Steps, e.Resolved, e.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save journey: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopJourneys retrieves the top N journeys for the given world.
// Results are ordered by locations charted, descending.
func (s *Store) TopJourneys(worldID string, limit int) ([]JourneyEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, world_id, mode, nodes, edges, steps, resolved, completed, created_at
		 FROM journeys
		 WHERE world_id = ?
		 ORDER BY nodes DESC
		 LIMIT ?`,
		worldID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journeys: %w", err)
	}
	defer rows.Close()

	return scanJourneys(rows)
}

// RecentJourneys retrieves the most recent journeys across all worlds.
func (s *Store) RecentJourneys(limit int) ([]JourneyEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, world_id, mode, nodes, edges, steps, resolved, completed, created_at
		 FROM journeys
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journeys: %w", err)
	}
	defer rows.Close()

	return scanJourneys(rows)
}

// scanJourneys reads journey rows into entries.
func scanJourneys(rows *sql.Rows) ([]JourneyEntry, error) {
	var entries []JourneyEntry
	for rows.Next() {
		var e JourneyEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.WorldID, &e.Mode, &e.Nodes, &e.Edges,
			&e.Steps, &e.Resolved, &e.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles the driver returning either time.Time or a
// datetime string.
func parseCreatedAt(v any) time.Time {
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

// BestCharted returns the highest locations-charted count for a world.
// Returns 0 if no journeys exist.
func (s *Store) BestCharted(worldID string) (int, error) {
	var nodes sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(nodes) FROM journeys WHERE world_id = ?",
		worldID,
	).Scan(&nodes)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best journey: %w", err)
	}

	if !nodes.Valid {
		return 0, nil
	}

	return int(nodes.Int64), nil
}

// ClearJourneys deletes all journeys for the given world.
func (s *Store) ClearJourneys(worldID string) error {
	_, err := s.db.Exec("DELETE FROM journeys WHERE world_id = ?", worldID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear journeys: %w", err)
	}
	return nil
}

// WorldStats contains aggregated statistics for one world.
type WorldStats struct {
	WorldID     string
	Journeys    int
	BestCharted int
	AvgCharted  float64
	Completions int
	LastPlayed  time.Time
}

// GetWorldStats retrieves aggregated statistics for a specific world.
func (s *Store) GetWorldStats(worldID string) (*WorldStats, error) {
	stats := &WorldStats{WorldID: worldID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(nodes), 0), COALESCE(AVG(nodes), 0),
		        COALESCE(SUM(completed), 0)
		 FROM journeys WHERE world_id = ?`,
		worldID,
	).Scan(&stats.Journeys, &stats.BestCharted, &stats.AvgCharted, &stats.Completions)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get world stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM journeys WHERE world_id = ? ORDER BY created_at DESC LIMIT 1`,
		worldID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// GetAllWorldsStats retrieves statistics for all worlds that have been
// played.
func (s *Store) GetAllWorldsStats() (map[string]*WorldStats, error) {
	rows, err := s.db.Query(
		`SELECT world_id, COUNT(*), MAX(nodes), AVG(nodes), SUM(completed), MAX(created_at)
		 FROM journeys
		 GROUP BY world_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all worlds stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*WorldStats)
	for rows.Next() {
		var ws WorldStats
		var lastPlayed any
		if err := rows.Scan(&ws.WorldID, &ws.Journeys, &ws.BestCharted,
			&ws.AvgCharted, &ws.Completions, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ws.LastPlayed = parseCreatedAt(lastPlayed)
		stats[ws.WorldID] = &ws
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
