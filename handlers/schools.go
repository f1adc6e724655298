// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/schoolpulse/middleware"
	"github.com/danielhkuo/schoolpulse/survey"
)

type SchoolHandler struct {
	svc *survey.Service
}

func NewSchoolHandler(svc *survey.Service) *SchoolHandler {
	return &SchoolHandler{svc: svc}
}

// ListSchools handles GET /schools
// Returns all schools ordered by name
func (h *SchoolHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.svc.ListSchools(r.Context())
	if err != nil {
		writeServiceError(w, err, "Schools not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, schools)
}
