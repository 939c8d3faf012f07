package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ugaemi/mazechase-server/internal/score"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
    id TEXT PRIMARY KEY,
    run_id TEXT UNIQUE NOT NULL,
    nickname TEXT NOT NULL DEFAULT '',
    level INTEGER NOT NULL,
    score INTEGER NOT NULL,
    elapsed_ms BIGINT NOT NULL,
    health DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_scores_level_rank ON scores(level, score DESC, elapsed_ms ASC);
`

// PostgresStore implements ScoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Save inserts a finished run. A run id can only be recorded once.
func (s *PostgresStore) Save(ctx context.Context, rec *score.Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO scores (id, run_id, nickname, level, score, elapsed_ms, health, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.RunID, rec.Nickname, rec.Level, rec.Score, rec.ElapsedMs, rec.Health, rec.CreatedAt)
	return err
}

// Top returns the best runs for level.
func (s *PostgresStore) Top(ctx context.Context, level, limit int) ([]*score.Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, run_id, nickname, level, score, elapsed_ms, health, created_at
		 FROM scores WHERE level = $1
		 ORDER BY score DESC, elapsed_ms ASC, created_at ASC
		 LIMIT $2`, level, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*score.Record, error) {
		return scanRecord(row)
	})
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanRecord(row pgx.Row) (*score.Record, error) {
	var rec score.Record
	err := row.Scan(&rec.ID, &rec.RunID, &rec.Nickname, &rec.Level, &rec.Score, &rec.ElapsedMs, &rec.Health, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
