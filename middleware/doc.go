// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/ranking", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). The request ID is a fresh UUID per request so the two
lines can be correlated.

# CORS Gateway

The gateway wraps the whole router:

	handler := middleware.CORS(mux)

OPTIONS requests are answered directly with 204 No Content and the
full preflight header set (wildcard origin, methods GET/POST/OPTIONS,
headers Content-Type/Authorization, max-age 86400). All other
responses get Access-Control-Allow-Origin and
Access-Control-Allow-Methods set unconditionally; handler status and
body pass through untouched.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.FailResponse(w, http.StatusBadRequest, "message")

FailResponse writes the shared {success:false, message} envelope. The
stats endpoint does not use it; its failure shape is {error} and is
written inline (see handlers).

Parse JSON request bodies:

	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.FailResponse(w, http.StatusBadRequest, "...")
		return
	}
*/
package middleware
