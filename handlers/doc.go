// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the therapy intake API.

# Handler Types

  - ApplicationHandler: list, get, create and partially update applications
  - StaticHandler: favicon, assets and the single-page app entry document
  - Health: database liveness for GET /health

ApplicationHandler depends on the ApplicationStore interface, which
*store.Store satisfies:

	applicationHandler := handlers.NewApplicationHandler(store.New(conn))

# Application Endpoints

	GET   /api/application      → ListApplications
	POST  /api/application      → CreateApplication (returns application_id)
	GET   /api/application/{id} → GetApplication
	PATCH /api/application/{id} → UpdateApplication

The {id} path value must fit a signed 16-bit integer, otherwise the
request fails with 400 before touching the database.

# Partial Updates

UpdateApplication writes only the fields present in the body. A present
therapist_minority_competence_responses list replaces the stored set,
so [] clears it. JSON null counts as absent.

# Errors

Failures are written by middleware.ErrorResponse as

	{"code": "NOT_FOUND", "message": "application not found", "status": 404}

with the status taken from the error's errs.Kind.
*/
package handlers
