// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sigana-id/sigana-server/cliparse"
	"github.com/sigana-id/sigana-server/db"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    TestDBURL,
		DatabaseType:   db.SQLite,
		LogLevel:       slog.LevelInfo,
		LogFormat:      "text",
		CORSOrigin:     "*",
		MetricsEnabled: true,
	}
}

// CreateTestVillage inserts a village and returns its ID
func CreateTestVillage(t *testing.T, conn *db.DB, name string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO village (id, name, district, created_at)
		VALUES ($1, $2, 'Cianjur', $3)
	`, id, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test village: %v", err)
	}

	return id
}

// CreateTestPosko inserts a posko in the village and returns its ID
func CreateTestPosko(t *testing.T, conn *db.DB, villageID, name string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO posko (id, name, village_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, name, villageID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test posko: %v", err)
	}

	return id
}

// CreateTestBalita registers a child and returns its ID
// sex should be "male" or "female"; poskoID may be empty
func CreateTestBalita(t *testing.T, conn *db.DB, villageID, poskoID, sex string, birth time.Time) string {
	t.Helper()

	var posko *string
	if poskoID != "" {
		posko = &poskoID
	}

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO balita (id, child_name, parent_name, birth_date, sex, village_id, posko_id, created_at)
		VALUES ($1, 'Test Child', 'Test Parent', $2, $3, $4, $5, $6)
	`, id, birth.UTC(), sex, villageID, posko, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test balita: %v", err)
	}

	return id
}

// CreateTestMeasurement stores a measurement with neutral scores and the
// given overall status, returning its ID
func CreateTestMeasurement(t *testing.T, conn *db.DB, balitaID, status string, measuredAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO measurement (
			id, balita_id, weight_kg, height_cm, head_circumference_cm, arm_circumference_cm,
			position, age_months,
			weight_for_age_z, height_for_age_z, weight_for_height_z,
			head_circumference_z, arm_circumference_z, bmi_for_age_z,
			weight_for_age_status, height_for_age_status, weight_for_height_status,
			head_circumference_status, arm_circumference_status, bmi_for_age_status,
			overall_status, measured_at, created_at
		)
		VALUES ($1, $2, 9.6, 75.7, 46.1, 15.2, 'lying', 12,
			0, 0, 0, 0, 0, 0,
			'Normal', 'Normal', 'Normal', 'Normal', 'Good', 'Good',
			$3, $4, $5)
	`, id, balitaID, status, measuredAt.UTC(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test measurement: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
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
