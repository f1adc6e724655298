// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/schoolpulse/middleware"
	"github.com/danielhkuo/schoolpulse/models"
	"github.com/danielhkuo/schoolpulse/survey"
)

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type SurveyHandler struct {
	svc *survey.Service
}

func NewSurveyHandler(svc *survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

// ListSurveys handles GET /surveys
// Returns every survey with its questions in question_number order
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.svc.ListSurveys(r.Context())
	if err != nil {
		writeServiceError(w, err, "Surveys not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, surveys)
}

// Submit handles POST /submit
// Answers are positional: the i-th answer belongs to the i-th question
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	responseID, err := h.svc.Submit(r.Context(), models.Submission{
		SurveyTitle: req.SurveyTitle,
		SchoolID:    req.SchoolID,
		Answers:     req.Answers,
	})
	if err != nil {
		writeServiceError(w, err, "Survey not found",
			"survey_title", req.SurveyTitle,
			"school_id", req.SchoolID,
		)
		return
	}

	middleware.SubmissionsTotal.WithLabelValues(req.SurveyTitle).Inc()
	slog.Info("response submitted",
		"response_id", responseID,
		"survey_title", req.SurveyTitle,
		"school_id", req.SchoolID,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		Success:    true,
		ResponseID: responseID,
	})
}

// validationMessage lists the failing fields and the rule each one broke
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return "Invalid request: " + strings.Join(fields, ", ")
}
