// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/schoolpulse/models"
	"github.com/danielhkuo/schoolpulse/testutil"
)

// TestFullSurveyWorkflow tests the complete end-to-end workflow:
// 1. List schools
// 2. List surveys
// 3. Submit responses from two schools
// 4. Verify results are scoped to one school
func TestFullSurveyWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.CreateTestSchool(t, conn, "Lincoln High")
	testutil.CreateTestSchool(t, conn, "Adams Middle")
	testutil.SeedShoeSurvey(t, conn)

	svc := newTestService(conn)
	schoolHandler := NewSchoolHandler(svc)
	surveyHandler := NewSurveyHandler(svc)
	resultsHandler := NewResultsHandler(svc)

	// Step 1: List schools
	w := httptest.NewRecorder()
	schoolHandler.ListSchools(w, httptest.NewRequest("GET", "/schools", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var schools []models.School
	testutil.AssertJSON(t, w, &schools)
	if len(schools) != 2 {
		t.Fatalf("Step 1 - Expected 2 schools, got %d", len(schools))
	}
	adams, lincoln := schools[0], schools[1]

	// Step 2: List surveys
	w = httptest.NewRecorder()
	surveyHandler.ListSurveys(w, httptest.NewRequest("GET", "/surveys", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var surveys []models.Survey
	testutil.AssertJSON(t, w, &surveys)
	if len(surveys) != 1 || len(surveys[0].Questions) != 2 {
		t.Fatalf("Step 2 - Unexpected surveys: %+v", surveys)
	}
	title := surveys[0].Title
	t.Logf("Step 2 - Found survey: %s", title)

	// Step 3: Submit answers picked from the listed options
	q1, q2 := surveys[0].Questions[0].Options, surveys[0].Questions[1].Options
	submissions := []struct {
		schoolID int64
		answers  []string
	}{
		{lincoln.ID, []string{q1[0], q2[1]}},
		{lincoln.ID, []string{q1[0], q2[0]}},
		{lincoln.ID, []string{q1[2], q2[1]}},
		{adams.ID, []string{q1[1], q2[0]}},
	}

	for i, sub := range submissions {
		req := testutil.MakeRequest("POST", "/submit", models.SubmitResponseRequest{
			SurveyTitle: title,
			SchoolID:    sub.schoolID,
			Answers:     sub.answers,
		}, nil)
		w := httptest.NewRecorder()
		surveyHandler.Submit(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Submission %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}

	// Step 4: Results for Lincoln only
	req := httptest.NewRequest("GET", "/results/x/y", nil)
	req.SetPathValue("survey_title", title)
	req.SetPathValue("school_id", strconv.FormatInt(lincoln.ID, 10))
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.AggregatedResult
	testutil.AssertJSON(t, w, &result)

	if result.SchoolName != "Lincoln High" {
		t.Errorf("Step 4 - Expected 'Lincoln High', got '%s'", result.SchoolName)
	}
	if result.TotalResponses != 3 {
		t.Errorf("Step 4 - Expected 3 responses, got %d", result.TotalResponses)
	}
	if got := result.QuestionResults[0].AnswerCounts[q1[0]]; got != 2 {
		t.Errorf("Step 4 - Expected %s counted twice, got %d", q1[0], got)
	}
	if got := result.QuestionResults[0].AnswerCounts[q1[1]]; got != 0 {
		t.Errorf("Step 4 - Adams answers leaked into Lincoln results: %d", got)
	}
	if got := result.QuestionResults[1].AnswerCounts[q2[1]]; got != 2 {
		t.Errorf("Step 4 - Expected %s counted twice, got %d", q2[1], got)
	}
}
