// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store holds every SQL statement of the service. Queries are
// written with ? placeholders and rebound for the active driver, and
// every failure comes back classified by sqlerr.
package store
