// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/schoolpulse/middleware"
	"github.com/danielhkuo/schoolpulse/survey"
)

type ResultsHandler struct {
	svc *survey.Service
}

func NewResultsHandler(svc *survey.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetResults handles GET /results/{survey_title}/{school_id}
// Returns per-question answer counts over every response from the school
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	surveyTitle := r.PathValue("survey_title")
	if surveyTitle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "survey_title is required")
		return
	}

	schoolID, err := strconv.ParseInt(r.PathValue("school_id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "school_id must be an integer")
		return
	}

	result, err := h.svc.Results(r.Context(), surveyTitle, schoolID)
	if err != nil {
		writeServiceError(w, err, "",
			"survey_title", surveyTitle,
			"school_id", schoolID,
		)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
