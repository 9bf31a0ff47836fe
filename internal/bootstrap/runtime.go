// Package bootstrap connects the process-wide runtime dependencies.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"careerflow/internal/cache"
	"careerflow/internal/config"
	"careerflow/internal/database"
	"careerflow/internal/mailer"
	"careerflow/internal/middleware"
	"careerflow/internal/observability"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// ApplySchema auto-migrates outside production. Production schema comes from cmd/migrate.
	ApplySchema bool
}

// Runtime holds the connections shared by the API and the command-line tools.
type Runtime struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Mailer mailer.Mailer
}

// ConfigureLogger rebuilds the package logger once the environment is known.
// The default logger is created at init time, before any .env file is loaded.
func ConfigureLogger(cfg *config.Config) {
	middleware.Logger = middleware.NewLogger(cfg.Env, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(middleware.Logger)
}

// InitTracing starts the tracer provider described by cfg.
func InitTracing(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	return observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:    "careerflow-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSamplerRatio,
	})
}

// InitRuntime connects to the database and Redis and selects the mailer.
// Redis is optional: an unreachable server yields a nil client.
func InitRuntime(cfg *config.Config, opts Options) (*Runtime, error) {
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: opts.ApplySchema})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return &Runtime{
		DB:     db,
		Redis:  cache.InitRedis(cfg.RedisURL),
		Mailer: mailer.New(cfg),
	}, nil
}

// Close releases the runtime's connections.
func (r *Runtime) Close() error {
	var firstErr error
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			firstErr = sqlDB.Close()
		}
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if closer, ok := r.Mailer.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
