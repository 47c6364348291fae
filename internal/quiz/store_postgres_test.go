package quiz_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ashrofu/kssm-hub/internal/quiz"
)

func setupPostgres(t *testing.T) *quiz.PostgresStore {
	t.Helper()
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx, "postgres:16-alpine",
		pgcontainer.WithDatabase("hub"),
		pgcontainer.WithUsername("hub"),
		pgcontainer.WithPassword("hub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("creating pool: %v", err)
	}
	t.Cleanup(pool.Close)

	store, err := quiz.NewPostgresStore(pool)
	if err != nil {
		t.Fatalf("NewPostgresStore: %v", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return store
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	store := setupPostgres(t)
	ctx := context.Background()

	p, err := store.Load(ctx, "nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.CompletedLevels) != 0 || p.CurrentLevel != 1 {
		t.Errorf("missing row should load as empty state, got %+v", p)
	}

	p.CompletedLevels = []int{1}
	p.CurrentLevel = 2
	p.Scores = map[int]int{1: 4}
	if err := store.Save(ctx, "alice", p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Upsert: saving again replaces the row.
	p.Scores[1] = 5
	if err := store.Save(ctx, "alice", p); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Scores[1] != 5 || got.CurrentLevel != 2 || !got.IsCompleted(1) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := store.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	after, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if len(after.CompletedLevels) != 0 {
		t.Errorf("delete did not clear row: %+v", after)
	}
}
