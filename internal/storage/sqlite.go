// Package storage persists the per-unit build cache that incremental site
// updates compare against.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// PageRecord is the cached state of one rendered reference page.
type PageRecord struct {
	Name       string
	Kind       string
	SourcePath string
	SourceHash string
	Synopsis   string
	OutputPath string
	RenderedAt time.Time
}

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens the cache database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS pages (
			name TEXT PRIMARY KEY,
			kind TEXT,
			source_path TEXT,
			source_hash TEXT,
			synopsis TEXT,
			output_path TEXT,
			rendered_at TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_pages_file ON pages(source_path);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

const upsertPage = `
	INSERT INTO pages (name, kind, source_path, source_hash, synopsis, output_path, rendered_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		kind=excluded.kind,
		source_path=excluded.source_path,
		source_hash=excluded.source_hash,
		synopsis=excluded.synopsis,
		output_path=excluded.output_path,
		rendered_at=excluded.rendered_at
`

// SavePage upserts a single page record.
func (s *SQLiteStore) SavePage(ctx context.Context, p *PageRecord) error {
	_, err := s.db.ExecContext(ctx, upsertPage,
		p.Name, p.Kind, p.SourcePath, p.SourceHash, p.Synopsis, p.OutputPath, p.RenderedAt)
	return err
}

// SavePages upserts a batch of page records in one transaction.
func (s *SQLiteStore) SavePages(ctx context.Context, pages []PageRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertPage)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range pages {
		p := &pages[i]
		if _, err := stmt.Exec(p.Name, p.Kind, p.SourcePath, p.SourceHash,
			p.Synopsis, p.OutputPath, p.RenderedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadPages returns every cached record keyed by unit name.
func (s *SQLiteStore) LoadPages(ctx context.Context) (map[string]PageRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, source_path, source_hash, synopsis, output_path, rendered_at FROM pages`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	out := map[string]PageRecord{}
	for rows.Next() {
		var p PageRecord
		if err := rows.Scan(&p.Name, &p.Kind, &p.SourcePath, &p.SourceHash,
			&p.Synopsis, &p.OutputPath, &p.RenderedAt); err != nil {
			return nil, err
		}
		out[p.Name] = p
	}
	return out, rows.Err()
}

// DeleteBySource removes records for units that lived in the given file.
func (s *SQLiteStore) DeleteBySource(ctx context.Context, sourcePath string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE source_path = ?`, sourcePath)
	return err
}
