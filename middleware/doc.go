// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /schools", middleware.WithLogging(handler))

Logs request start (request_id, method, path, client_ip) and completion
(status, duration_ms). The request id comes from X-Request-ID or a new UUID
and is echoed back in the response header.

# Metrics

WithLogging also records Prometheus metrics labelled by the matched route
pattern:

  - schoolpulse_http_requests_total{method, route, status}
  - schoolpulse_http_request_duration_seconds{method, route}
  - schoolpulse_submissions_total{survey}, incremented by the submit handler

MetricsHandler serves them for GET /metrics.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

Allows methods GET, POST, OPTIONS. Preflight requests are answered directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
