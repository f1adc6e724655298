// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/schoolpulse/db"
	"github.com/danielhkuo/schoolpulse/models"
	"github.com/danielhkuo/schoolpulse/survey"
	"github.com/danielhkuo/schoolpulse/testutil"
)

func newTestService(conn *sql.DB) *survey.Service {
	return survey.NewService(db.NewStore(conn))
}

func TestListSchools(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.CreateTestSchool(t, conn, "Lincoln High")
	testutil.CreateTestSchool(t, conn, "Adams Middle")
	handler := NewSchoolHandler(newTestService(conn))

	req := httptest.NewRequest("GET", "/schools", nil)
	w := httptest.NewRecorder()

	handler.ListSchools(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var schools []models.School
	testutil.AssertJSON(t, w, &schools)
	if len(schools) != 2 {
		t.Fatalf("Expected 2 schools, got %d", len(schools))
	}
	if schools[0].Name != "Adams Middle" {
		t.Errorf("Expected schools ordered by name, got %+v", schools)
	}
}

func TestListSchools_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewSchoolHandler(newTestService(conn))

	w := httptest.NewRecorder()
	handler.ListSchools(w, httptest.NewRequest("GET", "/schools", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got '%s'", body)
	}
}

func TestListSchools_DatabaseError(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewSchoolHandler(newTestService(conn))
	conn.Close()

	w := httptest.NewRecorder()
	handler.ListSchools(w, httptest.NewRequest("GET", "/schools", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Database error" {
		t.Errorf("Expected 'Database error', got '%s'", resp.Message)
	}
}
