// Package db opens the TRUSTMEBRO datastore. The backend is selected by
// configuration: a DATABASE_URL switches to PostgreSQL, otherwise an
// embedded SQLite file is used. Both backends share one logical schema and
// one repository layer; all SQL is written with $n placeholders, which both
// drivers accept.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	maxRetries    = 5
	retryInterval = 2 * time.Second
)

// Open connects to the configured backend, verifies the connection and runs
// pending migrations. Postgres connection attempts retry with a fixed
// interval because the database container often comes up after the app.
func Open(ctx context.Context, databaseURL, sqlitePath string) (*sql.DB, error) {
	if databaseURL != "" {
		return openPostgres(ctx, databaseURL)
	}
	return openSQLite(ctx, sqlitePath)
}

func openPostgres(ctx context.Context, databaseURL string) (*sql.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		conn, err := sql.Open("pgx", databaseURL)
		if err == nil {
			conn.SetMaxOpenConns(10)
			conn.SetMaxIdleConns(2)
			conn.SetConnMaxLifetime(time.Hour)
			if pingErr := conn.PingContext(ctx); pingErr == nil {
				if err := migrate(ctx, conn, "postgres"); err != nil {
					conn.Close()
					return nil, err
				}
				return conn, nil
			} else {
				conn.Close()
				err = pingErr
			}
		}
		lastErr = err
		if attempt < maxRetries {
			select {
			case <-time.After(retryInterval):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxRetries, lastErr)
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY churn under concurrent handlers.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, conn, "sqlite3"); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func migrate(ctx context.Context, conn *sql.DB, dialect string) error {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
