// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/therapy-intake/errs"
	"github.com/danielhkuo/therapy-intake/middleware"
	"github.com/danielhkuo/therapy-intake/models"
)

// ApplicationStore is the persistence the application handlers need.
// *store.Store implements it.
type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]models.ApplicationSummary, error)
	GetApplication(ctx context.Context, id int64) (models.Application, error)
	CreateApplication(ctx context.Context) (int64, error)
	UpdateApplication(ctx context.Context, id int64, req models.UpdateApplicationRequest) error
}

type ApplicationHandler struct {
	store ApplicationStore
}

func NewApplicationHandler(store ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{store: store}
}

// ListApplications handles GET /api/application
func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	zerolog.Ctx(r.Context()).Info().Msg("listing applications")

	applications, err := h.store.ListApplications(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, r, err)
		return
	}

	middleware.JSONResponse(w, r, http.StatusOK, models.ApplicationListResponse{
		Applications: applications,
	})
}

// GetApplication handles GET /api/application/{id}
func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		middleware.ErrorResponse(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("application_id", id).Msg("getting application")

	app, err := h.store.GetApplication(r.Context(), id)
	if err != nil {
		middleware.ErrorResponse(w, r, err)
		return
	}

	middleware.JSONResponse(w, r, http.StatusOK, app.StatusResponse())
}

// CreateApplication handles POST /api/application
func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	id, err := h.store.CreateApplication(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, r, err)
		return
	}

	log.Info().Int64("application_id", id).Msg("application created")

	middleware.JSONResponse(w, r, http.StatusOK, models.CreateApplicationResponse{
		ApplicationID: id,
	})
}

// UpdateApplication handles PATCH /api/application/{id}
//
// Only the fields present in the body are written. The response is an
// empty 200 on success.
func (h *ApplicationHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		middleware.ErrorResponse(w, r, err)
		return
	}

	var req models.UpdateApplicationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, r, errs.NewBadRequestError("handlers.UpdateApplication", "Invalid JSON", err))
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("application_id", id).Msg("updating application")

	if err := h.store.UpdateApplication(r.Context(), id, req); err != nil {
		middleware.ErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// parseApplicationID reads {id} as a signed 16-bit integer, the range
// the front-end has always used for application ids.
func parseApplicationID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		return 0, errs.NewBadRequestError("handlers.parseApplicationID", "invalid application id", err)
	}
	return id, nil
}
