// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the connection pool and migrates the schema.

# Connections

Open picks the driver from the configured database type:

  - sqlite: modernc.org/sqlite with foreign keys, WAL and a busy timeout
  - postgres: lib/pq

	conn, err := db.Open(cfg)

# Schema

CreateSchema applies the embedded golang-migrate migrations for the
database type. Running it on an up-to-date database is a no-op.

	if err := db.CreateSchema(conn.DB, cfg.DatabaseType); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

# Tables

  - applications: id, current_page, application_submitted, patient_age, patient_gender
  - therapist_minority_competence_responses: application_id, name

	applications 1──* therapist_minority_competence_responses

Response rows reference applications(id); with SQLite the foreign_keys
pragma makes that reference enforced.
*/
package db
