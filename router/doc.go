// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the schoolpulse API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Operational:

	GET /health   - Liveness check
	GET /metrics  - Prometheus metrics

Reference data:

	GET /schools  - Schools ordered by name
	GET /surveys  - Surveys with ordered questions and options

Responses:

	POST /submit                              - Store one set of answers
	GET  /results/{survey_title}/{school_id}  - Answer counts per question

# Handler Initialization

The router wraps the connection in a db.Store, builds one survey.Service
and hands it to every handler:

	svc := survey.NewService(db.NewStore(conn))
	schoolHandler := handlers.NewSchoolHandler(svc)
	surveyHandler := handlers.NewSurveyHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)
*/
package router
