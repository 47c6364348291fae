package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ashrofu/kssm-hub/internal/certificate"
	"github.com/ashrofu/kssm-hub/internal/curriculum"
	"github.com/ashrofu/kssm-hub/internal/platform/cache"
	"github.com/ashrofu/kssm-hub/internal/platform/config"
	"github.com/ashrofu/kssm-hub/internal/platform/database"
	"github.com/ashrofu/kssm-hub/internal/quiz"
	"github.com/ashrofu/kssm-hub/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	store, err := curriculum.Load()
	if err != nil {
		slog.Error("failed to load curriculum", "error", err)
		os.Exit(1)
	}
	bank, err := quiz.LoadBank()
	if err != nil {
		slog.Error("failed to load question bank", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	progress, cleanup, err := newProgressStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to set up progress store", "error", err, "backend", cfg.Progress.Backend)
		os.Exit(1)
	}
	defer cleanup()

	sessions := quiz.NewSessions(bank, progress)
	cert := &certificate.Renderer{FontPath: cfg.Certificate.FontPath}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.New(store, sessions, cert).Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "backend", cfg.Progress.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newProgressStore builds the configured quiz progress backend. The returned
// cleanup closes the backend's connections.
func newProgressStore(ctx context.Context, cfg *config.Config) (quiz.ProgressStore, func(), error) {
	switch cfg.Progress.Backend {
	case config.BackendRedis:
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			return nil, nil, err
		}
		return quiz.NewRedisStore(c), func() { c.Close() }, nil

	case config.BackendPostgres:
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return nil, nil, err
		}
		ps, err := quiz.NewPostgresStore(db.Pool)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := ps.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return ps, db.Close, nil

	default:
		return quiz.NewMemoryStore(), func() {}, nil
	}
}

// newLogger builds the root logger from the log config.
func newLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
