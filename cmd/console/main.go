package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/airmedops/medevac-console/internal/config"
	"github.com/airmedops/medevac-console/internal/fixtures"
	"github.com/airmedops/medevac-console/internal/metrics"
	"github.com/airmedops/medevac-console/internal/server"
	"github.com/airmedops/medevac-console/internal/session"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Console failed: %v", err)
		os.Exit(1)
	}
}

// run contains the main application logic and can be tested
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging(cfg)

	// Load and validate the fixture dataset
	store := fixtures.New()
	if err := store.Validate(); err != nil {
		return fmt.Errorf("fixture data invalid: %w", err)
	}

	// Create session store: Redis when configured, in-memory otherwise
	sessions, err := newSessionStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	defer func() {
		if cerr := sessions.Close(); cerr != nil {
			log.Printf("Warning: Failed to close session store: %v", cerr)
		}
	}()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Periodic stats logging
	m := metrics.New()
	go m.StartLogging(ctx, 5*time.Minute)

	srv := server.New(store, sessions, m)
	return srv.Run(ctx, cfg.HTTPAddr)
}

// newSessionStore selects the session backend from configuration
func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.RedisAddr == "" {
		log.Println("Using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}

	store, err := session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Printf("Using Redis session store at %s", cfg.RedisAddr)
	return store, nil
}

// setupLogging directs log output to a rotating file, the console, or both
func setupLogging(cfg *config.Config) {
	var writers []io.Writer

	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	if cfg.LogToConsole || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	log.SetOutput(io.MultiWriter(writers...))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
