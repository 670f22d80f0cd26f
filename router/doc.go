// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the therapy intake service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.New(conn), cfg)

Every route except /metrics is wrapped with middleware.WithLogging and
metrics.Instrument. Requests to a known path with an unregistered
method get 405 from the mux.

# Endpoints

Operational:

	GET /health   - 200 "OK" when the database answers, 503 otherwise
	GET /metrics  - Prometheus exposition

Applications:

	GET   /api/application      - List id, page and submitted flag
	POST  /api/application      - Create a blank application
	GET   /api/application/{id} - Full record with competence responses
	PATCH /api/application/{id} - Partial update

Front-end (served from cfg.StaticDir):

	GET /favicon.ico - favicon.ico
	GET /static/...  - files under the directory, /static/ stripped
	GET /            - index.html for every other path
*/
package router
