// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the schoolpulse API.

# Handler Types

Each handler is a struct holding the shared survey service:

  - SchoolHandler: school listing
  - SurveyHandler: survey listing and response submission
  - ResultsHandler: per-school answer counts

Handlers are created via constructor functions that accept *survey.Service:

	surveyHandler := handlers.NewSurveyHandler(svc)

# Submission

	POST /submit → Submit

The body is validated with go-playground/validator (survey_title and
school_id required, at least one answer). Answers are positional: the first
answer belongs to question 1, the second to question 2, and so on.

	{"survey_title": "Favorite Shoe Brands", "school_id": 1, "answers": ["Nike", "$50-$100"]}

Responds 201 with {"success": true, "response_id": 7}.

# Results

	GET /results/{survey_title}/{school_id} → GetResults

# Errors

Service errors map to status codes in one place:

  - survey.ErrNotFound → 404
  - survey.ErrMalformedRecord → 400
  - *survey.StorageError → 500 "Database error" (cause logged, not returned)
*/
package handlers
