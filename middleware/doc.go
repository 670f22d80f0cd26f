// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Context

WithRequestContext wraps the whole mux. It assigns a request id (or
keeps the caller's X-Request-ID), echoes it back, and stores a zerolog
child logger carrying request_id and client_ip in the context:

	server := http.Server{
		Handler: middleware.WithRequestContext(log, middleware.CORS(mux)),
	}

Handlers log through zerolog.Ctx(r.Context()).

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start and completion with status and duration_ms.

# CORS Middleware

Allows methods GET, POST, PATCH, OPTIONS and answers preflight requests
directly.

# JSON Helpers

	middleware.JSONResponse(w, r, http.StatusOK, data)
	middleware.ErrorResponse(w, r, err)

ErrorResponse maps err through errs.ToHTTP, so the status follows the
error's kind.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Honors X-Forwarded-For and X-Real-IP before RemoteAddr.
*/
package middleware
