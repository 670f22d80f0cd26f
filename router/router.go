// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/therapy-intake/cliparse"
	"github.com/danielhkuo/therapy-intake/handlers"
	"github.com/danielhkuo/therapy-intake/metrics"
	"github.com/danielhkuo/therapy-intake/middleware"
	"github.com/danielhkuo/therapy-intake/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// route registers a handler with request logging and metrics keyed
	// by the pattern, never the raw path.
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, metrics.Instrument(pattern, middleware.WithLogging(h)))
	}

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(st)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// Operational endpoints
	route("GET /health", handlers.Health(st))
	mux.Handle("GET /metrics", metrics.Handler())

	// Application API
	route("GET /api/application", applicationHandler.ListApplications)
	route("POST /api/application", applicationHandler.CreateApplication)
	route("GET /api/application/{id}", applicationHandler.GetApplication)
	route("PATCH /api/application/{id}", applicationHandler.UpdateApplication)

	// Front-end
	route("GET /favicon.ico", staticHandler.Favicon)
	route("GET /static/", staticHandler.Assets)
	route("GET /", staticHandler.Index)

	return mux
}
