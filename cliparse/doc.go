// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are layered: Defaults, then environment variables (read through
koanf), then flags. DatabaseType is inferred from DatabaseURL when left
empty.

# CLI Flags

	-p          PORT               Server port (3005)
	-d          DATABASE_URL       Database URL (required)
	-t          DATABASE_TYPE      sqlite or postgres
	-static     STATIC_DIR         Front-end directory (www)
	-log-level  LOG_LEVEL          Log level (info)
	-log-pretty LOG_PRETTY         Console log output
	-max-conns  DB_MAX_OPEN_CONNS  Pool size (10)
	-migrate    DB_MIGRATE         Apply migrations at startup (true)

CLI flags take precedence over environment variables.

# Dotenv

LoadDotEnv reads a .env file into the process environment before
parsing. Variables already set are not overwritten.

# Validation

Validate runs go-playground/validator over the struct tags and returns
an errs.Config error naming the first bad field.
*/
package cliparse
