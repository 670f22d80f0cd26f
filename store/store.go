// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/therapy-intake/models"
	"github.com/danielhkuo/therapy-intake/sqlerr"
)

// Store runs every SQL statement the service needs against one shared
// pool. It is safe for concurrent use.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type summaryRow struct {
	ID                   int64  `db:"id"`
	CurrentPage          string `db:"current_page"`
	ApplicationSubmitted int64  `db:"application_submitted"`
}

type applicationRow struct {
	CurrentPage          string  `db:"current_page"`
	ApplicationSubmitted int64   `db:"application_submitted"`
	PatientAge           *string `db:"patient_age"`
	PatientGender        *string `db:"patient_gender"`
}

// fieldUpdate is one column assignment of a partial update.
type fieldUpdate struct {
	column string
	value  any
}

// Ping checks that the pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	return sqlerr.Wrap("store.Ping", s.db.PingContext(ctx))
}

// ListApplications returns every application in store order.
func (s *Store) ListApplications(ctx context.Context) ([]models.ApplicationSummary, error) {
	var rows []summaryRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, current_page, application_submitted FROM applications`)
	if err != nil {
		return nil, sqlerr.Wrap("store.ListApplications", err)
	}

	applications := make([]models.ApplicationSummary, 0, len(rows))
	for _, row := range rows {
		applications = append(applications, models.ApplicationSummary{
			ApplicationID:        row.ID,
			CurrentPage:          row.CurrentPage,
			ApplicationSubmitted: row.ApplicationSubmitted != 0,
		})
	}
	return applications, nil
}

// GetApplication loads one application and its competence responses
// from a single transaction, so a concurrent ReplaceResponses is seen
// either entirely or not at all. A missing id yields an errs.NotFound.
func (s *Store) GetApplication(ctx context.Context, id int64) (models.Application, error) {
	var app models.Application

	err := s.withTx(ctx, "store.GetApplication", func(tx *sqlx.Tx) error {
		var row applicationRow
		err := tx.GetContext(ctx, &row, tx.Rebind(`
			SELECT current_page, application_submitted, patient_age, patient_gender
			FROM applications
			WHERE id = ?
		`), id)
		if err != nil {
			return err
		}

		names := []string{}
		err = tx.SelectContext(ctx, &names, tx.Rebind(`
			SELECT name
			FROM therapist_minority_competence_responses
			WHERE application_id = ?
		`), id)
		if err != nil {
			return err
		}

		app = models.Application{
			ID:                          id,
			CurrentPage:                 row.CurrentPage,
			ApplicationSubmitted:        row.ApplicationSubmitted != 0,
			PatientAge:                  row.PatientAge,
			PatientGender:               row.PatientGender,
			TherapistMinorityCompetence: names,
		}
		return nil
	})
	if err != nil {
		return models.Application{}, err
	}

	return app, nil
}

// CreateApplication inserts a blank application and returns its id.
func (s *Store) CreateApplication(ctx context.Context) (int64, error) {
	var id int64
	err := s.withTx(ctx, "store.CreateApplication", func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx,
			`INSERT INTO applications DEFAULT VALUES RETURNING id`).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateApplication applies a partial update in one transaction: one
// UPDATE per present field, then the response set replacement if the
// request carries one. Absent fields are left as they are. An unknown
// id updates nothing and is not an error.
func (s *Store) UpdateApplication(ctx context.Context, id int64, req models.UpdateApplicationRequest) error {
	return s.withTx(ctx, "store.UpdateApplication", func(tx *sqlx.Tx) error {
		for _, update := range fieldUpdates(req) {
			query := tx.Rebind(`UPDATE applications SET ` + update.column + ` = ? WHERE id = ?`)
			if _, err := tx.ExecContext(ctx, query, update.value, id); err != nil {
				return fmt.Errorf("update %s: %w", update.column, err)
			}
		}

		if req.TherapistMinorityCompetenceResponses != nil {
			return replaceResponses(ctx, tx, id, *req.TherapistMinorityCompetenceResponses)
		}
		return nil
	})
}

// ReplaceResponses swaps the whole competence response set of an
// application in its own transaction.
func (s *Store) ReplaceResponses(ctx context.Context, id int64, names []string) error {
	return s.withTx(ctx, "store.ReplaceResponses", func(tx *sqlx.Tx) error {
		return replaceResponses(ctx, tx, id, names)
	})
}

// replaceResponses deletes every response row of the application, then
// inserts names in order. Duplicates are kept.
func replaceResponses(ctx context.Context, tx *sqlx.Tx, id int64, names []string) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(`
		DELETE FROM therapist_minority_competence_responses
		WHERE application_id = ?
	`), id)
	if err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}

	insert := tx.Rebind(`
		INSERT INTO therapist_minority_competence_responses (application_id, name)
		VALUES (?, ?)
	`)
	for _, name := range names {
		if _, err := tx.ExecContext(ctx, insert, id, name); err != nil {
			return fmt.Errorf("insert response: %w", err)
		}
	}
	return nil
}

func fieldUpdates(req models.UpdateApplicationRequest) []fieldUpdate {
	var updates []fieldUpdate
	if req.CurrentPage != nil {
		updates = append(updates, fieldUpdate{"current_page", *req.CurrentPage})
	}
	if req.ApplicationSubmitted != nil {
		submitted := 0
		if *req.ApplicationSubmitted {
			submitted = 1
		}
		updates = append(updates, fieldUpdate{"application_submitted", submitted})
	}
	if req.PatientAge != nil {
		updates = append(updates, fieldUpdate{"patient_age", *req.PatientAge})
	}
	if req.PatientGender != nil {
		updates = append(updates, fieldUpdate{"patient_gender", *req.PatientGender})
	}
	return updates
}

// withTx runs fn in a transaction and commits it. Any failure, the
// commit included, rolls back and is returned classified.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return sqlerr.Wrap(op, fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return sqlerr.Wrap(op, err)
	}

	if err := tx.Commit(); err != nil {
		return sqlerr.Wrap(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}
