// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/therapy-intake/errs"
	"github.com/danielhkuo/therapy-intake/models"
	"github.com/danielhkuo/therapy-intake/store"
	"github.com/danielhkuo/therapy-intake/testutil"
)

func setupHandler(t *testing.T) (*ApplicationHandler, *sqlx.DB) {
	t.Helper()
	cfg := testutil.GetTestConfig(t)
	conn := testutil.SetupTestDB(t, cfg)
	return NewApplicationHandler(store.New(conn)), conn
}

func getApplication(t *testing.T, h *ApplicationHandler, id string) (*httptest.ResponseRecorder, models.ApplicationStatusResponse) {
	t.Helper()
	req := testutil.MakeRequest("GET", "/api/application/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.GetApplication(w, req)

	var resp models.ApplicationStatusResponse
	if w.Code == http.StatusOK {
		testutil.AssertJSON(t, w, &resp)
	}
	return w, resp
}

func patchApplication(t *testing.T, h *ApplicationHandler, id string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("PATCH", "/api/application/"+id, body)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.UpdateApplication(w, req)
	return w
}

func TestCreateApplication(t *testing.T) {
	handler, conn := setupHandler(t)

	for want := int64(1); want <= 3; want++ {
		w := httptest.NewRecorder()
		handler.CreateApplication(w, testutil.MakeRequest("POST", "/api/application", nil))

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CreateApplicationResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ApplicationID != want {
			t.Errorf("Expected application_id %d, got %d", want, resp.ApplicationID)
		}
	}

	var count int
	if err := conn.Get(&count, "SELECT COUNT(*) FROM applications"); err != nil {
		t.Fatalf("Failed to count applications: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 applications, got %d", count)
	}
}

func TestGetApplication(t *testing.T) {
	handler, conn := setupHandler(t)

	id := testutil.CreateTestApplication(t, conn)
	testutil.AddTestResponse(t, conn, id, "black")
	testutil.AddTestResponse(t, conn, id, "lgbtq")

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedCode   string
		checkResponse  func(t *testing.T, resp models.ApplicationStatusResponse)
	}{
		{
			name:           "existing application",
			id:             strconv.FormatInt(id, 10),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp models.ApplicationStatusResponse) {
				if resp.CurrentPage != models.DefaultPage {
					t.Errorf("Expected current_page %q, got %q", models.DefaultPage, resp.CurrentPage)
				}
				if resp.ApplicationSubmitted {
					t.Error("Expected application_submitted false")
				}
				if resp.PatientAge != nil || resp.PatientGender != nil {
					t.Error("Expected patient fields to be null")
				}
				if len(resp.TherapistMinorityCompetence) != 2 {
					t.Errorf("Expected 2 responses, got %v", resp.TherapistMinorityCompetence)
				}
			},
		},
		{name: "nonexistent", id: "999", expectedStatus: http.StatusNotFound, expectedCode: "NOT_FOUND"},
		{name: "negative", id: "-1", expectedStatus: http.StatusNotFound, expectedCode: "NOT_FOUND"},
		{name: "not a number", id: "abc", expectedStatus: http.StatusBadRequest, expectedCode: "BAD_REQUEST"},
		{name: "out of range", id: "40000", expectedStatus: http.StatusBadRequest, expectedCode: "BAD_REQUEST"},
		{name: "empty", id: "", expectedStatus: http.StatusBadRequest, expectedCode: "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := getApplication(t, handler, tt.id)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
			if tt.expectedCode != "" {
				var body errs.HTTPError
				testutil.AssertJSON(t, w, &body)
				if body.Code != tt.expectedCode {
					t.Errorf("Expected code %s, got %s", tt.expectedCode, body.Code)
				}
			}
		})
	}
}

func TestGetApplicationEmptyResponsesIsArray(t *testing.T) {
	handler, conn := setupHandler(t)
	id := testutil.CreateTestApplication(t, conn)

	req := testutil.MakeRequest("GET", "/api/application/1", nil)
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	handler.GetApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	expected := `{"current_page":"patient_age","application_submitted":false,"patient_age":null,` +
		`"patient_gender":null,"therapist_minority_competence":[]}` + "\n"
	if w.Body.String() != expected {
		t.Errorf("Expected body %s, got %s", expected, w.Body.String())
	}
}

func TestUpdateApplication(t *testing.T) {
	handler, conn := setupHandler(t)
	id := strconv.FormatInt(testutil.CreateTestApplication(t, conn), 10)

	tests := []struct {
		name           string
		id             string
		body           interface{}
		expectedStatus int
	}{
		{"current page", id, map[string]any{"current_page": "patient_gender"}, http.StatusOK},
		{"patient fields", id, map[string]any{"patient_age": "34", "patient_gender": "female"}, http.StatusOK},
		{"responses", id, map[string]any{"therapist_minority_competence_responses": []string{"asian"}}, http.StatusOK},
		{"empty object", id, map[string]any{}, http.StatusOK},
		{"unknown id scalar only", "123", map[string]any{"current_page": "review"}, http.StatusOK},
		{"unknown id with responses", "123", map[string]any{"therapist_minority_competence_responses": []string{"x"}}, http.StatusConflict},
		{"invalid JSON", id, "invalid json", http.StatusBadRequest},
		{"wrong type", id, map[string]any{"application_submitted": "yes"}, http.StatusBadRequest},
		{"bad id", "one", map[string]any{"current_page": "review"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patchApplication(t, handler, tt.id, tt.body)
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK && w.Body.Len() != 0 {
				t.Errorf("Expected empty body, got %q", w.Body.String())
			}
		})
	}

	_, resp := getApplication(t, handler, id)
	if resp.CurrentPage != "patient_gender" {
		t.Errorf("Expected current_page patient_gender, got %q", resp.CurrentPage)
	}
	if resp.PatientAge == nil || *resp.PatientAge != "34" {
		t.Errorf("Expected patient_age 34, got %v", resp.PatientAge)
	}
	if resp.PatientGender == nil || *resp.PatientGender != "female" {
		t.Errorf("Expected patient_gender female, got %v", resp.PatientGender)
	}
	if len(resp.TherapistMinorityCompetence) != 1 || resp.TherapistMinorityCompetence[0] != "asian" {
		t.Errorf("Expected responses [asian], got %v", resp.TherapistMinorityCompetence)
	}
}

func TestListApplications(t *testing.T) {
	handler, conn := setupHandler(t)

	w := httptest.NewRecorder()
	handler.ListApplications(w, testutil.MakeRequest("GET", "/api/application", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Body.String(); got != "{\"applications\":[]}\n" {
		t.Errorf("Expected empty applications array, got %s", got)
	}

	created := map[int64]bool{}
	for i := 0; i < 4; i++ {
		created[testutil.CreateTestApplication(t, conn)] = true
	}

	w = httptest.NewRecorder()
	handler.ListApplications(w, testutil.MakeRequest("GET", "/api/application", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ApplicationListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Applications) != len(created) {
		t.Fatalf("Expected %d applications, got %d", len(created), len(resp.Applications))
	}
	for _, app := range resp.Applications {
		if !created[app.ApplicationID] {
			t.Errorf("Unexpected application id %d", app.ApplicationID)
		}
		delete(created, app.ApplicationID)
	}
}

// failingStore returns the same error from every method.
type failingStore struct{ err error }

func (f failingStore) ListApplications(context.Context) ([]models.ApplicationSummary, error) {
	return nil, f.err
}

func (f failingStore) GetApplication(context.Context, int64) (models.Application, error) {
	return models.Application{}, f.err
}

func (f failingStore) CreateApplication(context.Context) (int64, error) {
	return 0, f.err
}

func (f failingStore) UpdateApplication(context.Context, int64, models.UpdateApplicationRequest) error {
	return f.err
}

func TestBackendFailuresAreInternalErrors(t *testing.T) {
	handler := NewApplicationHandler(failingStore{
		err: errs.NewBackendError("store", errors.New("database is locked")),
	})

	tests := []struct {
		name   string
		call   func(w http.ResponseWriter, r *http.Request)
		method string
		body   interface{}
	}{
		{"list", handler.ListApplications, "GET", nil},
		{"get", handler.GetApplication, "GET", nil},
		{"create", handler.CreateApplication, "POST", nil},
		{"update", handler.UpdateApplication, "PATCH", map[string]any{"current_page": "review"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, "/api/application/1", tt.body)
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			tt.call(w, req)

			testutil.AssertStatus(t, w, http.StatusInternalServerError)
			var body errs.HTTPError
			testutil.AssertJSON(t, w, &body)
			if body.Message != "Internal Server Error" {
				t.Errorf("Expected generic message, got %q", body.Message)
			}
		})
	}
}
