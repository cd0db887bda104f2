package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/audio-insight/internal/analyzer"
	"github.com/nguyentantai21042004/audio-insight/internal/config"
	"github.com/nguyentantai21042004/audio-insight/internal/export"
	"github.com/nguyentantai21042004/audio-insight/internal/gemini"
	"github.com/nguyentantai21042004/audio-insight/internal/logger"
	"github.com/nguyentantai21042004/audio-insight/internal/processor"
	"github.com/nguyentantai21042004/audio-insight/internal/registry"
	"github.com/nguyentantai21042004/audio-insight/internal/watcher"
	"github.com/nguyentantai21042004/audio-insight/pkg/retry"
)

func main() {
	ctx := context.Background()

	// Load .env if present; real environment takes precedence
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Insight Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Strategy: %s", cfg.Analysis.Strategy)
	log.Info(ctx, "Max Concurrent Analyses: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	apiKeys := loadAPIKeys()
	if len(apiKeys) == 0 {
		log.Error(ctx, "No API key found: set GEMINI_API_KEY or GEMINI_API_KEYS")
		os.Exit(1)
	}
	log.Info(ctx, "Loaded %d API key(s)", len(apiKeys))

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	gen, err := gemini.New(apiKeys, cfg.Gemini.Model, log)
	if err != nil {
		log.Error(ctx, "Failed to create model client: %v", err)
		os.Exit(1)
	}

	anl := analyzer.New(gen, log, analyzer.Options{
		Strategy: cfg.Analysis.Strategy,
		Policy: retry.Policy{
			MaxAttempts: cfg.Analysis.MaxAttempts,
			BaseDelay:   time.Duration(cfg.Analysis.BaseDelayMs) * time.Millisecond,
		},
		QuestionDelay: time.Duration(cfg.Analysis.QuestionDelayMs) * time.Millisecond,
	})

	exp := export.New(log)
	reg := registry.New()
	proc := processor.New(cfg, anl, exp, reg, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Insight is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Audio Insight stopped")
}

// loadAPIKeys reads model API keys from the environment. GEMINI_API_KEYS
// holds a comma-separated list for key rotation; GEMINI_API_KEY a single key.
func loadAPIKeys() []string {
	var keys []string
	for _, raw := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if key := strings.TrimSpace(raw); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
