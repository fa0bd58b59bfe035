// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a local SQLite history of CLI runs. The HTTP and
// Lambda handlers never touch it.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mailwright/pkg/types"
)

const (
	dbFile          = "history.db"
	defaultListSize = 20
)

// Kind is the command that produced an entry.
type Kind string

const (
	KindBrainDump Kind = "braindump"
	KindDraft     Kind = "draft"
)

// Entry is one archived run.
type Entry struct {
	ID        int64           `json:"id" yaml:"id"`
	Kind      Kind            `json:"kind" yaml:"kind"`
	Model     string          `json:"model" yaml:"model"`
	Input     json.RawMessage `json:"input" yaml:"-"`
	Output    json.RawMessage `json:"output" yaml:"-"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

// Store is the history database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates cfg.Dir/history.db.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(cfg.Dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			model TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run. input and output are marshaled to JSON.
func (s *Store) Record(ctx context.Context, kind Kind, model string, input, output any) (Entry, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return Entry{}, fmt.Errorf("marshaling input: %w", err)
	}
	out, err := json.Marshal(output)
	if err != nil {
		return Entry{}, fmt.Errorf("marshaling output: %w", err)
	}

	created := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (kind, model, input, output, created_at) VALUES (?, ?, ?, ?, ?)`,
		string(kind), model, string(in), string(out), created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("reading run id: %w", err)
	}

	return Entry{ID: id, Kind: kind, Model: model, Input: in, Output: out, CreatedAt: created}, nil
}

// List returns up to limit runs, newest first. A non-positive limit means 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListSize
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, model, input, output, created_at FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			kind    string
			in, out string
			created string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Model, &in, &out, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Kind = Kind(kind)
		e.Input = json.RawMessage(in)
		e.Output = json.RawMessage(out)
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parsing created_at of run %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
