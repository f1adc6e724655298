// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/schoolpulse/cliparse"
	"github.com/danielhkuo/schoolpulse/db"
	"github.com/danielhkuo/schoolpulse/handlers"
	"github.com/danielhkuo/schoolpulse/middleware"
	"github.com/danielhkuo/schoolpulse/survey"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers around one service
	svc := survey.NewService(db.NewStore(conn))
	schoolHandler := handlers.NewSchoolHandler(svc)
	surveyHandler := handlers.NewSurveyHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	// Reference data
	mux.HandleFunc("GET /schools", middleware.WithLogging(schoolHandler.ListSchools))
	mux.HandleFunc("GET /surveys", middleware.WithLogging(surveyHandler.ListSurveys))

	// Responses
	mux.HandleFunc("POST /submit", middleware.WithLogging(surveyHandler.Submit))
	mux.HandleFunc("GET /results/{survey_title}/{school_id}", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("schoolpulse API v1"))
	})

	return mux
}
