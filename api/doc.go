// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package api is the HTTP client for the remote service-request API.

# Endpoints

	POST   /auth/login                    → Login
	GET    /service-requests?type=&status= → ListRequests
	POST   /service-requests              → CreateRequest (status forced to PENDING)
	PATCH  /service-requests/{id}/status  → UpdateStatus
	DELETE /service-requests/{id}         → DeleteRequest

# Authentication

SetToken installs an opaque bearer credential; every subsequent
request carries it:

	Authorization: Bearer <token>

ClearToken removes it (idempotent). The client never inspects or
refreshes the token - a stale token simply surfaces as an APIError
from whatever call the server rejects.

# Errors

Transport failures come back wrapped; non-2xx responses come back as
*APIError with the status code and the server's message when the body
carried one. No call retries automatically.

# Request Tracing

Every outgoing request gets a fresh X-Request-ID (UUID) and a
structured log line with method, path, status, and duration.
*/
package api
