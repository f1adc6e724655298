// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/schoolpulse/cliparse"
	"github.com/danielhkuo/schoolpulse/db"
	"github.com/danielhkuo/schoolpulse/survey"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DialectSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8000,
		DatabaseURL:   TestDBURL,
		DatabaseType:  db.DialectSQLite,
		AllowedOrigin: "*",
	}
}

// CreateTestSchool inserts a school and returns its ID
func CreateTestSchool(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO schools (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test school: %v", err)
	}

	return id
}

// CreateTestQuestion inserts one survey question row and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, title, category string, number int, text string, options ...string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO surveys (title, category, question_number, questions)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, title, category, number, survey.EncodeQuestion(text, options)).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CreateTestResponse stores a raw encoded answers value and returns its ID
func CreateTestResponse(t *testing.T, conn *sql.DB, surveyID, schoolID int64, answers string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO responses (survey_id, school_id, answers)
		VALUES ($1, $2, $3)
		RETURNING id
	`, surveyID, schoolID, answers).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}

	return id
}

// SeedShoeSurvey creates the two-question "Favorite Shoe Brands" survey and
// returns the id of its first question row
func SeedShoeSurvey(t *testing.T, conn *sql.DB) int64 {
	t.Helper()

	surveyID := CreateTestQuestion(t, conn, "Favorite Shoe Brands", "fashion", 1, "What brand?", "Nike", "Adidas", "Vans")
	CreateTestQuestion(t, conn, "Favorite Shoe Brands", "fashion", 2, "Budget?", "$0-$50", "$50-$100")
	return surveyID
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
