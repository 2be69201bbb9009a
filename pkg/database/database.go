package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"finance-assistant/config"
)

// database/sql driver names
const (
	driverPgx    = "pgx"
	driverSQLite = "sqlite"

	pingTimeout     = 5 * time.Second
	connMaxIdleTime = 5 * time.Minute
)

// Open connects to the configured database and verifies it with a ping.
// The caller owns the returned handle.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = sql.Open(driverPgx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("database: open postgres: %w", err)
		}
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
			db.SetMaxIdleConns(cfg.MaxOpenConns)
		}
		db.SetConnMaxIdleTime(connMaxIdleTime)

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("database: create %s: %w", dir, err)
			}
		}
		db, err = sql.Open(driverSQLite, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("database: open sqlite: %w", err)
		}
		// One writer at a time avoids SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)

	default:
		return nil, fmt.Errorf("database: unsupported driver %q", cfg.Driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", cfg.Driver, err)
	}

	return db, nil
}
