// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/schoolpulse/middleware"
	"github.com/danielhkuo/schoolpulse/survey"
)

// writeServiceError maps survey service errors to HTTP responses.
// notFoundMsg is shown for survey.ErrNotFound, or the error itself when empty.
// Storage details only go to the log.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string, attrs ...any) {
	var storageErr *survey.StorageError

	switch {
	case errors.Is(err, survey.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = err.Error()
		}
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, survey.ErrMalformedRecord):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &storageErr):
		slog.Error("storage operation failed", append([]any{"op", storageErr.Op, "error", storageErr.Err}, attrs...)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	default:
		slog.Error("survey operation failed", append([]any{"error", err}, attrs...)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
