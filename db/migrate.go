// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/danielhkuo/therapy-intake/cliparse"
)

//go:embed migrations
var migrations embed.FS

// CreateSchema applies the embedded migrations for the given database
// type. Safe to call on every start: an up-to-date schema is a no-op.
//
// The migrate instance is deliberately not closed; its database driver
// would close the shared pool.
func CreateSchema(conn *sql.DB, databaseType string) error {
	src, err := iofs.New(migrations, "migrations/"+databaseType)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	var driver database.Driver
	switch databaseType {
	case cliparse.DatabaseSQLite:
		driver, err = sqlite.WithInstance(conn, &sqlite.Config{})
	case cliparse.DatabasePostgres:
		driver, err = postgres.WithInstance(conn, &postgres.Config{})
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, databaseType, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
