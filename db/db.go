// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/therapy-intake/cliparse"
)

// PingTimeout bounds the startup connectivity check.
const PingTimeout = 10 * time.Second

// sqlitePragmas are applied to every SQLite connection in the pool.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
	"_pragma=journal_mode(WAL)",
}

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open creates the shared connection pool for the configured database
// and verifies it is reachable.
func Open(cfg cliparse.Config) (*sqlx.DB, error) {
	driver, dsn, err := DriverAndDSN(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// DriverAndDSN returns the database/sql driver name and connection
// string for a configured database type and URL.
func DriverAndDSN(databaseType, url string) (string, string, error) {
	switch databaseType {
	case cliparse.DatabaseSQLite:
		return "sqlite", SQLiteDSN(url), nil
	case cliparse.DatabasePostgres:
		return "postgres", url, nil
	default:
		return "", "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// SQLiteDSN accepts "sqlite:path", "sqlite://path", "file:path" or a
// bare path and returns a modernc DSN with the pool pragmas appended.
// Pragmas already present in the URL are kept.
func SQLiteDSN(url string) string {
	dsn := url
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite:"):
		dsn = strings.TrimPrefix(dsn, "sqlite:")
	}

	for _, pragma := range sqlitePragmas {
		name := pragma[:strings.IndexByte(pragma, '(')]
		if strings.Contains(dsn, name+"(") {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + pragma
		} else {
			dsn += "?" + pragma
		}
	}
	return dsn
}
