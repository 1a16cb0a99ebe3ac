// Package store provides persistence-backed division registries: a Postgres
// store holding the full historical GB/T 2260 dump and a Redis read-through
// cache layered over any registry.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"idcheck/internal/division"
)

// Postgres implements division.Registry over a divisions table. It is the
// full-dataset path; the embedded in-memory table is the zero-config default.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Open connects to Postgres with the lib/pq driver and verifies the
// connection before returning.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the divisions table if it does not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS divisions (
			code     TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			revision INT  NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure divisions schema: %w", err)
	}
	return nil
}

// Lookup implements division.Registry.
func (s *Postgres) Lookup(ctx context.Context, code string) (division.Division, bool, error) {
	var d division.Division
	err := s.db.QueryRowContext(ctx,
		`SELECT code, name, revision FROM divisions WHERE code = $1`, code,
	).Scan(&d.Code, &d.Name, &d.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return division.Division{}, false, nil
	}
	if err != nil {
		return division.Division{}, false, fmt.Errorf("lookup division %q: %w", code, err)
	}
	return d, true, nil
}

// Seed implements division.Seeder with an upsert per record, so reloading a
// newer revision replaces names without dropping retired codes.
func (s *Postgres) Seed(ctx context.Context, divisions []division.Division) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO divisions (code, name, revision) VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, revision = EXCLUDED.revision`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, d := range divisions {
		if _, err := stmt.ExecContext(ctx, d.Code, d.Name, d.Revision); err != nil {
			return fmt.Errorf("seed division %q: %w", d.Code, err)
		}
	}
	return tx.Commit()
}

// Count reports the number of stored divisions, used by health reporting.
func (s *Postgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM divisions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count divisions: %w", err)
	}
	return n, nil
}
