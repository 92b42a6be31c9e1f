package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/CodeKokeshi/SteamTimer/internal/models"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		return nil, err
	}
	return database, nil
}

func (d *Database) initTables() error {
	// Append-only log of completed counting spans. The running timer never
	// reads from it, so elapsed time does not survive a restart.
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            started_at DATETIME NOT NULL,
            ended_at DATETIME NOT NULL,
            seconds INTEGER NOT NULL
        )
    `)
	return err
}

// SaveSpan appends one completed counting span.
func (d *Database) SaveSpan(span models.Span) error {
	_, err := d.db.Exec(`
        INSERT INTO sessions (started_at, ended_at, seconds)
        VALUES (?, ?, ?)
    `, span.StartedAt, span.EndedAt, span.Seconds)
	return err
}

type SessionStats struct {
	TotalSessions  int
	TotalSeconds   int64
	LongestSeconds int64
}

// GetSessionStats aggregates all recorded spans for the About dialog.
func (d *Database) GetSessionStats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := d.db.QueryRow(`
        SELECT
            COUNT(*) as sessions,
            COALESCE(SUM(seconds), 0) as total_seconds,
            COALESCE(MAX(seconds), 0) as longest_seconds
        FROM sessions
    `).Scan(&stats.TotalSessions, &stats.TotalSeconds, &stats.LongestSeconds)

	return stats, err
}

// GetSpans returns recorded spans, most recent first.
func (d *Database) GetSpans(limit int) ([]models.Span, error) {
	rows, err := d.db.Query(`
        SELECT started_at, ended_at, seconds
        FROM sessions
        ORDER BY ended_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spans []models.Span
	for rows.Next() {
		var span models.Span
		if err := rows.Scan(&span.StartedAt, &span.EndedAt, &span.Seconds); err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}
	return spans, rows.Err()
}

func (d *Database) Close() error {
	return d.db.Close()
}
