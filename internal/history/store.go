// Package history records created tickets in a local SQLite database so
// they can be listed later without hitting the tracker.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tixmd/tixmd/internal/config"
)

// Ticket is one recorded issue creation.
type Ticket struct {
	ID        int64
	Key       string
	Summary   string
	Project   string
	URL       string
	CreatedAt time.Time
}

// Store persists tickets in SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS tickets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    key TEXT NOT NULL,
    summary TEXT NOT NULL,
    project TEXT NOT NULL,
    url TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tickets_created_at ON tickets(created_at DESC);
`

// DefaultPath returns the database path under the app data directory.
func DefaultPath() (string, error) {
	dataDir, err := config.GetDataDir()
	if err != nil {
		return "", fmt.Errorf("get data directory: %w", err)
	}
	return filepath.Join(dataDir, "history.db"), nil
}

// Open opens (creating if needed) the ticket database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a ticket and returns it with ID and CreatedAt filled in.
func (s *Store) Record(ctx context.Context, t Ticket) (*Ticket, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tickets (key, summary, project, url, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.Key, t.Summary, t.Project, t.URL, t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	t.ID = id
	return &t, nil
}

// List returns the most recent tickets, newest first. limit <= 0 means
// no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Ticket, error) {
	query := `SELECT id, key, summary, project, url, created_at FROM tickets ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []Ticket
	for rows.Next() {
		var t Ticket
		if err := rows.Scan(&t.ID, &t.Key, &t.Summary, &t.Project, &t.URL, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
