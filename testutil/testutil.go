// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/therapy-intake/cliparse"
	"github.com/danielhkuo/therapy-intake/db"
)

// GetTestConfig returns a configuration pointing at a fresh SQLite file
// inside the test's temporary directory.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	cfg := cliparse.Defaults()
	cfg.DatabaseType = cliparse.DatabaseSQLite
	cfg.DatabaseURL = "sqlite:" + filepath.Join(t.TempDir(), "intake_test.db")
	cfg.StaticDir = t.TempDir()
	return cfg
}

// SetupTestDB opens a migrated database for cfg and closes it when the
// test ends.
func SetupTestDB(t *testing.T, cfg cliparse.Config) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn.DB, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestApplication inserts a blank application and returns its id.
func CreateTestApplication(t *testing.T, conn *sqlx.DB) int64 {
	t.Helper()

	var id int64
	if err := conn.Get(&id, "INSERT INTO applications DEFAULT VALUES RETURNING id"); err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	return id
}

// AddTestResponse inserts one competence response row.
func AddTestResponse(t *testing.T, conn *sqlx.DB, applicationID int64, name string) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO therapist_minority_competence_responses (application_id, name)
		VALUES (?, ?)
	`), applicationID, name)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
