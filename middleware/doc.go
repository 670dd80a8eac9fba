// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /villages", middleware.WithLogging(handler))

Logs completion with method, path, client_ip, status and duration_ms, and
records the latency under the matched route pattern in the metrics
package.

# CORS Middleware

Enable cross-origin requests for the field app:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

An empty or "*" origin sends a literal "*" and no credentials. A
configured origin is the only one allowed and may send credentials.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateVillageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Pagination

	page, limit, err := middleware.ParsePagination(r)
	meta := middleware.NewPageMeta(page, limit, total)

page defaults to 1 and limit to 10 (at most 100). A page whose row offset
would overflow an int is rejected with ErrInvalidPage.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP.
*/
package middleware
