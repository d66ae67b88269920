package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Open connects a pgx pool to the PostgreSQL database named by dsn.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

// Migrate creates the documents table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS documents (
  id         TEXT PRIMARY KEY,
  code_table TEXT NOT NULL,
  packed     BYTEA NOT NULL,
  bit_len    INTEGER NOT NULL CHECK (bit_len > 0),
  symbols    INTEGER NOT NULL CHECK (symbols > 0),
  created_at TIMESTAMPTZ NOT NULL
)`)
	return err
}

type documentRepoPostgres struct {
	pool *pgxpool.Pool
}

// NewDocumentRepoPostgres returns a DocumentRepo storing records in the
// documents table.
func NewDocumentRepoPostgres(pool *pgxpool.Pool) DocumentRepo {
	return &documentRepoPostgres{pool: pool}
}

func (r *documentRepoPostgres) Save(ctx context.Context, rec *Record) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO documents (id, code_table, packed, bit_len, symbols, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Table, rec.Packed, rec.BitLen, rec.Symbols, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("save document %s: %w", rec.ID, err)
	}
	return nil
}

func (r *documentRepoPostgres) FindByID(ctx context.Context, id string) (*Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, code_table, packed, bit_len, symbols, created_at
FROM documents WHERE id = $1`, id)

	var rec Record
	err := row.Scan(&rec.ID, &rec.Table, &rec.Packed, &rec.BitLen, &rec.Symbols, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find document %s: %w", id, err)
	}
	return &rec, nil
}

func (r *documentRepoPostgres) List(ctx context.Context) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, code_table, packed, bit_len, symbols, created_at
FROM documents ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Table, &rec.Packed, &rec.BitLen, &rec.Symbols, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return out, nil
}
