// Package sqlite stores the operator session in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/repository"
	"blogpilot/internal/errors"

	_ "modernc.org/sqlite"
)

// SessionRepository keeps a single session row.
type SessionRepository struct {
	db *sql.DB
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*SessionRepository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.Wrap(err, "create session directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open session database")
	}
	// A single connection keeps :memory: databases consistent across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "configure session database")
	}

	r := &SessionRepository{db: db}
	if err := r.ensureSchema(); err != nil {
		db.Close()

		return nil, err
	}

	return r, nil
}

func (r *SessionRepository) ensureSchema() error {
	_, err := r.db.Exec(`
CREATE TABLE IF NOT EXISTS session (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    token TEXT NOT NULL,
    display_name TEXT NOT NULL DEFAULT '',
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`)

	return errors.Wrap(err, "create session table")
}

// Close closes the database.
func (r *SessionRepository) Close() error {
	return r.db.Close()
}

func (r *SessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var session entity.Session
	err := r.db.QueryRowContext(ctx, `SELECT token, display_name FROM session WHERE id = 1`).
		Scan(&session.Token, &session.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}

	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO session (id, token, display_name, updated_at) VALUES (1, ?, ?, datetime('now'))
ON CONFLICT(id) DO UPDATE SET token = excluded.token, display_name = excluded.display_name, updated_at = excluded.updated_at`,
		session.Token, session.DisplayName)

	return errors.Wrap(err, "save session")
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)

	return errors.Wrap(err, "clear session")
}
