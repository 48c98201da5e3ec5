package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/evharlow/lumen/internal/ai"
	"github.com/evharlow/lumen/internal/api"
	"github.com/evharlow/lumen/internal/auth"
	"github.com/evharlow/lumen/internal/config"
	"github.com/evharlow/lumen/internal/journal"
	"github.com/evharlow/lumen/internal/ratelimit"
	"github.com/evharlow/lumen/internal/store"
)

func main() {
	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// SQLite
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Stores
	stores := api.Stores{
		Journal:     store.NewJournalStore(db),
		Todos:       store.NewTodoStore(db),
		Moods:       store.NewMoodStore(db),
		Habits:      store.NewHabitStore(db),
		Media:       store.NewMediaStore(db),
		Preferences: store.NewPreferenceStore(db),
	}

	// External analysis engine
	engine := ai.NewClient(cfg.EngineBaseURL, cfg.EngineTimeout(), logger)
	if err := engine.HealthCheck(context.Background()); err != nil {
		logger.Warn("analysis engine not available at startup, responses will degrade", "error", err)
	}

	// Orchestration core
	aggregator := journal.NewAggregator(stores.Todos, stores.Moods, stores.Habits, stores.Media, stores.Journal, logger)
	prompts := journal.NewPromptGenerator(engine, logger)
	persister := journal.NewPersister(stores.Todos, stores.Moods, stores.Habits, stores.Media)

	// Admission control
	limiter := ratelimit.New()

	// Auth
	verifier := auth.NewHMACVerifier(cfg.AuthSecret)

	// Router
	router := api.NewRouter(db, stores, engine, aggregator, prompts, persister, limiter, verifier, logger)

	// Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("lumen server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
