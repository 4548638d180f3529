// Package store persists clipboard history in SQLite.
//
// A Store holds one long-lived *sql.DB (modernc.org/sqlite, pure Go). Each
// public operation is a single statement or transaction, so readers never
// observe a half-applied insert or delete. Identifiers come from SQLite's
// AUTOINCREMENT sequence, which survives DeleteAll — ids are never reused.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by GetByID when no clip has the requested id.
// It is a normal outcome, not a storage failure.
var ErrNotFound = errors.New("clip not found")

// ErrEmptyContent is returned by Insert for empty content.
var ErrEmptyContent = errors.New("clip content must not be empty")

// TimeFormat is the stored created_at layout: UTC, second precision,
// literal trailing Z.
const TimeFormat = "2006-01-02T15:04:05Z"

// Clip is one recorded clipboard value. Title and Category are reserved
// fields; nothing writes them yet, but they are surfaced as nullable so
// future writers need no schema change.
type Clip struct {
	ID        int64
	CreatedAt string
	Content   string
	Title     *string
	Category  *string
}

const schema = `
CREATE TABLE IF NOT EXISTS clipboard_history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	content    TEXT NOT NULL,
	title      TEXT,
	category   TEXT
);
`

// Store is a handle to the clipboard history database.
// Safe for concurrent use; database/sql pools connections and the
// busy_timeout pragma covers writer contention.
type Store struct {
	db *sql.DB

	// now is the clock used for created_at stamps. Tests override it.
	now func() time.Time
}

// Open opens (creating if necessary) the history database at path and
// ensures the schema exists. Parent directories are created. The schema
// setup is idempotent and never touches existing rows.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if path == ":memory:" {
		// Every new connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Insert records content as a new clip and returns its id. Ids are strictly
// increasing in insertion order. created_at is the current UTC instant at
// second precision.
func (s *Store) Insert(ctx context.Context, content string) (int64, error) {
	if content == "" {
		return 0, ErrEmptyContent
	}

	createdAt := s.now().UTC().Format(TimeFormat)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO clipboard_history (created_at, content) VALUES (?, ?)`,
		createdAt, content,
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: insert id: %w", err)
	}
	return id, nil
}

// GetByID returns the clip with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (Clip, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, content, title, category
		 FROM clipboard_history WHERE id = ?`, id)

	var c Clip
	err := row.Scan(&c.ID, &c.CreatedAt, &c.Content, &c.Title, &c.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return Clip{}, ErrNotFound
	}
	if err != nil {
		return Clip{}, fmt.Errorf("store: get %d: %w", id, err)
	}
	return c, nil
}

// ListRecent returns up to limit clips, newest first. A non-empty search
// restricts results to clips whose content, title, or category contains it
// as a case-insensitive substring; NULL fields never match.
func (s *Store) ListRecent(ctx context.Context, limit int, search string) ([]Clip, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("store: limit must be positive, got %d", limit)
	}

	var (
		rows *sql.Rows
		err  error
	)
	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, created_at, content, title, category
			 FROM clipboard_history
			 WHERE content LIKE ? ESCAPE '\'
			    OR title LIKE ? ESCAPE '\'
			    OR category LIKE ? ESCAPE '\'
			 ORDER BY id DESC
			 LIMIT ?`,
			pattern, pattern, pattern, limit,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, created_at, content, title, category
			 FROM clipboard_history
			 ORDER BY id DESC
			 LIMIT ?`, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return scanClips(rows)
}

// ListAll returns every clip, newest first.
func (s *Store) ListAll(ctx context.Context) ([]Clip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, content, title, category
		 FROM clipboard_history
		 ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list all: %w", err)
	}
	return scanClips(rows)
}

// DeleteAll removes every clip and returns the number of rows deleted.
// The id sequence is not reset; the next Insert continues above the
// highest id ever issued.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clipboard_history`)
	if err != nil {
		return 0, fmt.Errorf("store: delete all: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: delete count: %w", err)
	}
	return n, nil
}

func scanClips(rows *sql.Rows) ([]Clip, error) {
	defer rows.Close()

	var clips []Clip
	for rows.Next() {
		var c Clip
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.Content, &c.Title, &c.Category); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		clips = append(clips, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: rows: %w", err)
	}
	return clips, nil
}

// escapeLike makes s a literal substring pattern for LIKE ... ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
