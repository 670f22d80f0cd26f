// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sqlerr classifies errors from database/sql and the two drivers
// into errs kinds.
package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/therapy-intake/errs"
)

// pqIntegrityViolation is the SQLSTATE class for constraint failures.
const pqIntegrityViolation pq.ErrorClass = "23"

// Classify maps a raw database error onto an errs.Kind.
func Classify(err error) errs.Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NotFound
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// Extended codes carry the primary code in the low byte.
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return errs.Conflict
		}
		return errs.Backend
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == pqIntegrityViolation {
			return errs.Conflict
		}
		return errs.Backend
	}

	return errs.KindOf(err)
}

// Wrap tags err with its kind and the failing operation. It returns nil
// for a nil error and leaves already-tagged errors untouched.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var tagged *errs.Error
	if errors.As(err, &tagged) {
		return err
	}

	switch kind := Classify(err); kind {
	case errs.NotFound:
		return errs.E(kind, op, "application not found", err)
	case errs.Conflict:
		return errs.E(kind, op, "constraint violation", err)
	default:
		return errs.E(kind, op, "", err)
	}
}
