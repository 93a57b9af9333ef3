// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/urban-services/models"
)

// APIError is a non-2xx response from the server, with whatever
// message the body carried.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client is a thin wrapper over the service-request HTTP API. Once a
// bearer token is set it is attached to every request, the way the
// web front-end pins Authorization on its axios instance.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the API at baseURL. No timeout is
// configured beyond transport defaults; retry is the caller's job.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// SetToken installs the bearer credential used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer credential. Clearing an absent token
// is a no-op.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently installed bearer credential, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login posts credentials to /auth/login. It does not touch the
// client's token; installing the credential is the session layer's
// decision.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	return resp, err
}

// ListRequests fetches service requests, optionally narrowed by type
// and status. A FilterAll value omits that query parameter entirely.
func (c *Client) ListRequests(ctx context.Context, f models.Filters) ([]models.ServiceRequest, error) {
	query := url.Values{}
	if f.Type != models.FilterAll {
		query.Set("type", f.Type)
	}
	if f.Status != models.FilterAll {
		query.Set("status", f.Status)
	}

	var requests []models.ServiceRequest
	if err := c.do(ctx, http.MethodGet, "/service-requests", query, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateRequest submits a new service request. The status field is
// forced to PENDING here no matter what the caller put in it; new
// requests never start in any other state.
func (c *Client) CreateRequest(ctx context.Context, req models.CreateServiceRequestRequest) (models.ServiceRequest, error) {
	req.Status = models.StatusPending

	var created models.ServiceRequest
	err := c.do(ctx, http.MethodPost, "/service-requests", nil, req, &created)
	return created, err
}

// UpdateStatus moves a request to a new status.
func (c *Client) UpdateStatus(ctx context.Context, id int, status string) (models.ServiceRequest, error) {
	var updated models.ServiceRequest
	path := "/service-requests/" + strconv.Itoa(id) + "/status"
	err := c.do(ctx, http.MethodPatch, path, nil, models.UpdateStatusRequest{Status: status}, &updated)
	return updated, err
}

// DeleteRequest deletes a request. The server is responsible for
// rejecting deletes on non-pending requests reached out-of-band.
func (c *Client) DeleteRequest(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/service-requests/"+strconv.Itoa(id), nil, nil, nil)
}

// do issues one request and decodes the JSON response into out (when
// out is non-nil). Every call gets a fresh X-Request-ID and is logged
// with its duration.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	slog.Info("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
