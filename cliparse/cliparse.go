// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/danielhkuo/therapy-intake/errs"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultPort         = 3005
	DefaultStaticDir    = "www"
	DefaultLogLevel     = "info"
	DefaultMaxOpenConns = 10
)

type Config struct {
	Port         int    `koanf:"port" validate:"min=1,max=65535"`
	DatabaseURL  string `koanf:"database_url" validate:"required"`
	DatabaseType string `koanf:"database_type" validate:"oneof=sqlite postgres"`
	StaticDir    string `koanf:"static_dir" validate:"required"`
	LogLevel     string `koanf:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty    bool   `koanf:"log_pretty"`
	MaxOpenConns int    `koanf:"db_max_open_conns" validate:"min=1"`
	Migrate      bool   `koanf:"db_migrate"`
}

// envKeys lists the environment variables read into Config.
var envKeys = map[string]bool{
	"port":              true,
	"database_url":      true,
	"database_type":     true,
	"static_dir":        true,
	"log_level":         true,
	"log_pretty":        true,
	"db_max_open_conns": true,
	"db_migrate":        true,
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:         DefaultPort,
		StaticDir:    DefaultStaticDir,
		LogLevel:     DefaultLogLevel,
		MaxOpenConns: DefaultMaxOpenConns,
		Migrate:      true,
	}
}

// LoadDotEnv loads variables from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewConfigError("failed to load "+path, err)
	}
	return nil
}

// ParseFlags builds the configuration: defaults, then environment
// variables, then CLI flags, then validation.
func ParseFlags(args []string) (Config, error) {
	cfg := Defaults()

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !envKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return Config{}, errs.NewConfigError("could not load environment", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errs.NewConfigError("could not decode environment", err)
	}

	flags := flag.NewFlagSet("therapy-intake", flag.ContinueOnError)

	port := flags.Int("p", cfg.Port, "Server port")
	databaseURL := flags.String("d", cfg.DatabaseURL, "Database URL")
	databaseType := flags.String("t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	staticDir := flags.String("static", cfg.StaticDir, "Front-end asset directory")
	logLevel := flags.String("log-level", cfg.LogLevel, "Log level")
	logPretty := flags.Bool("log-pretty", cfg.LogPretty, "Human-readable console logs")
	maxConns := flags.Int("max-conns", cfg.MaxOpenConns, "Maximum open database connections")
	migrate := flags.Bool("migrate", cfg.Migrate, "Apply database migrations at startup")

	if err := flags.Parse(args); err != nil {
		return Config{}, errs.NewConfigError("invalid flags", err)
	}

	cfg.Port = *port
	cfg.DatabaseURL = *databaseURL
	cfg.DatabaseType = *databaseType
	cfg.StaticDir = *staticDir
	cfg.LogLevel = strings.ToLower(*logLevel)
	cfg.LogPretty = *logPretty
	cfg.MaxOpenConns = *maxConns
	cfg.Migrate = *migrate

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = InferDatabaseType(cfg.DatabaseURL)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// InferDatabaseType picks the driver from the URL scheme.
func InferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}

func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errs.NewConfigError(describe(verrs[0]), err)
		}
		return errs.NewConfigError("invalid configuration", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "DatabaseURL":
		return "database URL required (use -d or DATABASE_URL env)"
	case "DatabaseType":
		return "database type must be sqlite or postgres"
	case "Port":
		return "invalid port"
	default:
		return "invalid " + fe.Field()
	}
}
