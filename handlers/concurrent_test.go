// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/schoolpulse/models"
	"github.com/danielhkuo/schoolpulse/testutil"
)

// TestConcurrentSubmissions verifies that simultaneous submissions are all
// stored and all show up in the results
func TestConcurrentSubmissions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	schoolID := testutil.CreateTestSchool(t, conn, "Lincoln High")
	testutil.SeedShoeSurvey(t, conn)

	svc := newTestService(conn)
	surveyHandler := NewSurveyHandler(svc)

	brands := []string{"Nike", "Adidas", "Vans"}
	numSubmissions := 12

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numSubmissions; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/submit", models.SubmitResponseRequest{
				SurveyTitle: "Favorite Shoe Brands",
				SchoolID:    schoolID,
				Answers:     []string{brands[idx%len(brands)], "$0-$50"},
			}, nil)
			w := httptest.NewRecorder()

			surveyHandler.Submit(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numSubmissions {
		t.Errorf("Expected %d successful submissions, got %d", numSubmissions, successCount.Load())
	}

	var distinctIDs int
	if err := conn.QueryRow("SELECT COUNT(DISTINCT id) FROM responses").Scan(&distinctIDs); err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	if distinctIDs != numSubmissions {
		t.Errorf("Expected %d distinct response ids, got %d", numSubmissions, distinctIDs)
	}

	result, err := svc.Results(t.Context(), "Favorite Shoe Brands", schoolID)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	for _, brand := range brands {
		if got := result.QuestionResults[0].AnswerCounts[brand]; got != numSubmissions/len(brands) {
			t.Errorf("Expected %d votes for %s, got %d", numSubmissions/len(brands), brand, got)
		}
	}
}

// TestConcurrentReads verifies that parallel result reads agree with each other
func TestConcurrentReads(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	schoolID := testutil.CreateTestSchool(t, conn, "Lincoln High")
	surveyID := testutil.SeedShoeSurvey(t, conn)
	testutil.CreateTestResponse(t, conn, surveyID, schoolID, "Nike|$0-$50")
	testutil.CreateTestResponse(t, conn, surveyID, schoolID, "Vans|$50-$100")

	svc := newTestService(conn)

	results := make([]models.AggregatedResult, 8)
	errs := make([]error, len(results))
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = svc.Results(t.Context(), "Favorite Shoe Brands", schoolID)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("Read %d failed: %v", i, err)
		}
		if results[i].TotalResponses != 2 {
			t.Errorf("Read %d: expected 2 responses, got %d", i, results[i].TotalResponses)
		}
	}
}
