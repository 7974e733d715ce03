package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/config"
	"catalog-backend/pkg/logger"
)

// PostgresDB wraps the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *config.DatabaseConfig
}

const (
	connectMaxRetries = 5
	connectRetryDelay = 1 * time.Second
	connectTimeout    = 5 * time.Second
)

// NewPostgresDB creates an unconnected database wrapper.
func NewPostgresDB(cfg *config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) connectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.User,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.Database,
		db.Config.SSLMode,
	)
}

func (db *PostgresDB) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(db.connectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	cfg.MaxConns = int32(db.Config.MaxConns)
	cfg.MinConns = int32(db.Config.MinConns)
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	return cfg, nil
}

// Connect establishes the pool, retrying with exponential backoff.
// A connection attempt is bounded by connectTimeout so the caller
// never hangs on an unreachable server.
func (db *PostgresDB) Connect(ctx context.Context) error {
	cfg, err := db.poolConfig()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, cfg)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				db.Pool = pool
				logger.Info("database connected", map[string]interface{}{
					"host":    db.Config.Host,
					"attempt": attempt,
				})
				return nil
			}
		}

		logger.Warn("database connection attempt failed", map[string]interface{}{
			"attempt": attempt,
			"error":   lastErr.Error(),
		})

		if attempt < connectMaxRetries {
			delay := connectRetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", connectMaxRetries, lastErr)
}

// HealthCheck verifies database connectivity.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
