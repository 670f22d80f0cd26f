// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package errs defines the tagged error type shared by every layer.

# Kinds

	Backend    500  database or I/O failure (the zero value)
	NotFound   404  no application with the requested id
	Conflict   409  constraint violation, e.g. responses for a missing application
	BadRequest 400  malformed id or JSON body
	Config     500  invalid configuration, fatal at startup

Construct errors with the helpers:

	return errs.NewNotFoundError("store.GetApplication", "application not found")

and inspect them with KindOf or Is. ToHTTP produces the JSON body:

	{"code": "NOT_FOUND", "message": "application not found", "status": 404}
*/
package errs
