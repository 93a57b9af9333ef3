// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/urban-services/models"
	"github.com/danielhkuo/urban-services/store"
)

// Credentials every FakeAPI accepts.
const (
	TestEmail    = "admin@prefeitura.gov.br"
	TestPassword = "s3cret"
	TestToken    = "test-bearer-token"
)

// TestUser is the record returned by a successful fake login.
var TestUser = models.User{ID: 1, Email: TestEmail}

// FakeAPI is an in-memory stand-in for the remote service-request
// server, good enough to exercise every client code path: login,
// filtered listing, create, status update, and delete. It records the
// requests it sees so tests can assert on wire behavior.
type FakeAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	nextID   int
	requests []models.ServiceRequest

	// Captured traffic
	ListQueries  []url.Values
	CreateBodies []models.CreateServiceRequestRequest
	AuthHeaders  []string

	// FailAll makes every endpoint answer 500, for error-path tests.
	FailAll bool

	// DelayNextList stalls the next list response only, letting tests
	// stage an older fetch that resolves after a newer one.
	DelayNextList time.Duration
}

// NewFakeAPI starts the fake server. It is shut down with the test.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{nextID: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", f.handleLogin)
	mux.HandleFunc("GET /service-requests", f.handleList)
	mux.HandleFunc("POST /service-requests", f.handleCreate)
	mux.HandleFunc("PATCH /service-requests/{id}/status", f.handleUpdateStatus)
	mux.HandleFunc("DELETE /service-requests/{id}", f.handleDelete)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the fake server's base URL.
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// Seed installs requests directly, bypassing the HTTP surface.
func (f *FakeAPI) Seed(requests ...models.ServiceRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range requests {
		if r.ID >= f.nextID {
			f.nextID = r.ID + 1
		}
		f.requests = append(f.requests, r)
	}
}

// Requests returns a copy of the server-side table.
func (f *FakeAPI) Requests() []models.ServiceRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ServiceRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *FakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	if f.failing(w) {
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email != TestEmail || req.Password != TestPassword {
		errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	jsonResponse(w, http.StatusOK, models.LoginResponse{
		AccessToken: TestToken,
		User:        TestUser,
	})
}

func (f *FakeAPI) handleList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.ListQueries = append(f.ListQueries, r.URL.Query())
	f.AuthHeaders = append(f.AuthHeaders, r.Header.Get("Authorization"))
	delay := f.DelayNextList
	f.DelayNextList = 0
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if f.failing(w) {
		return
	}

	typeFilter := r.URL.Query().Get("type")
	statusFilter := r.URL.Query().Get("status")

	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ServiceRequest{}
	for _, req := range f.requests {
		if typeFilter != "" && req.Type != typeFilter {
			continue
		}
		if statusFilter != "" && req.Status != statusFilter {
			continue
		}
		out = append(out, req)
	}
	jsonResponse(w, http.StatusOK, out)
}

func (f *FakeAPI) handleCreate(w http.ResponseWriter, r *http.Request) {
	if f.failing(w) {
		return
	}

	var req models.CreateServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateBodies = append(f.CreateBodies, req)

	now := time.Now().UTC()
	created := models.ServiceRequest{
		ID:            f.nextID,
		Type:          req.Type,
		Address:       req.Address,
		Description:   req.Description,
		RequesterName: req.RequesterName,
		Document:      req.Document,
		Status:        req.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.nextID++
	f.requests = append(f.requests, created)

	jsonResponse(w, http.StatusCreated, created)
}

func (f *FakeAPI) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if f.failing(w) {
		return
	}
	if !f.authorized(w, r) {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = req.Status
			f.requests[i].UpdatedAt = time.Now().UTC()
			jsonResponse(w, http.StatusOK, f.requests[i])
			return
		}
	}
	errorResponse(w, http.StatusNotFound, "not found")
}

func (f *FakeAPI) handleDelete(w http.ResponseWriter, r *http.Request) {
	if f.failing(w) {
		return
	}
	if !f.authorized(w, r) {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID == id {
			// Deleting a non-pending request is the server's call to
			// reject, and this one rejects it.
			if f.requests[i].Status != models.StatusPending {
				errorResponse(w, http.StatusConflict, "only pending requests can be deleted")
				return
			}
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	errorResponse(w, http.StatusNotFound, "not found")
}

func (f *FakeAPI) failing(w http.ResponseWriter) bool {
	if f.FailAll {
		errorResponse(w, http.StatusInternalServerError, "boom")
		return true
	}
	return false
}

func (f *FakeAPI) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+TestToken {
		errorResponse(w, http.StatusUnauthorized, "missing or invalid token")
		return false
	}
	return true
}

// jsonResponse writes a JSON response
func jsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse writes a JSON error response
func errorResponse(w http.ResponseWriter, statusCode int, message string) {
	jsonResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// NewKV opens a throwaway state file under the test's temp dir.
func NewKV(t *testing.T) *store.KV {
	t.Helper()

	kv, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to open test state file: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

// PendingRequest builds a pending lamp-replacement request with a
// valid CPF, the common fixture.
func PendingRequest(id int) models.ServiceRequest {
	now := time.Now().UTC().Add(-time.Duration(id) * time.Hour)
	return models.ServiceRequest{
		ID:            id,
		Type:          models.TypeLampReplacement,
		Address:       "Rua das Flores, 100",
		Description:   "Poste apagado em frente ao mercado",
		RequesterName: "João da Silva",
		Document:      "11144477735",
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
