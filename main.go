package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/therapy-intake/cliparse"
	"github.com/danielhkuo/therapy-intake/db"
	"github.com/danielhkuo/therapy-intake/logger"
	"github.com/danielhkuo/therapy-intake/middleware"
	"github.com/danielhkuo/therapy-intake/router"
	"github.com/danielhkuo/therapy-intake/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; a malformed one is not
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log := logger.New(cliparse.DefaultLogLevel, false)
		log.Fatal().Err(err).Msg("loading .env failed")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log := logger.New(cliparse.DefaultLogLevel, false)
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	// Connect to the database
	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("database_type", cfg.DatabaseType).Msg("database connection failed")
	}
	defer conn.Close()

	if cfg.Migrate {
		if err := db.CreateSchema(conn.DB, cfg.DatabaseType); err != nil {
			log.Fatal().Err(err).Msg("schema migration failed")
		}
		log.Info().Msg("database schema ready")
	}

	// Create router
	mux := router.NewRouter(store.New(conn), cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.WithRequestContext(log, middleware.CORS(mux)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-ctrlc
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			server.Close()
		}
	}()

	// Start server
	log.Info().
		Int("port", cfg.Port).
		Str("database_type", cfg.DatabaseType).
		Str("static_dir", cfg.StaticDir).
		Msg("listening")

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server closed")
		return
	}
	log.Info().Msg("server closed")
}
