package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed ProgressStore: one row per player
// with the progress record as jsonb.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed progress store.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the progress table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS quiz_progress (
		   user_id    TEXT PRIMARY KEY,
		   progress   JSONB NOT NULL,
		   updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		 )`)
	if err != nil {
		return fmt.Errorf("creating quiz_progress table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, user string) (Progress, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT progress FROM quiz_progress WHERE user_id = $1`,
		user,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NewProgress(), nil
		}
		return NewProgress(), fmt.Errorf("loading progress: %w", err)
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("discarding malformed progress record", "user", user, "error", err)
		return NewProgress(), nil
	}
	p.normalize()
	return p, nil
}

func (s *PostgresStore) Save(ctx context.Context, user string, p Progress) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO quiz_progress (user_id, progress, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id)
		 DO UPDATE SET progress = EXCLUDED.progress, updated_at = NOW()`,
		user,
		data,
	)
	if err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, user string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.pool.Exec(ctx,
		`DELETE FROM quiz_progress WHERE user_id = $1`,
		user,
	); err != nil {
		return fmt.Errorf("deleting progress: %w", err)
	}
	return nil
}
