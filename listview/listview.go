// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listview

import (
	"context"
	"sync"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/models"
)

// View holds the list state: the active filters and the last list the
// server gave us. Every filter change and every mutation triggers a
// full re-fetch; nothing is patched or filtered locally. A failed
// fetch leaves the previous list visible.
type View struct {
	client *api.Client

	mu       sync.Mutex
	filters  models.Filters
	requests []models.ServiceRequest

	// Fetches are tagged with a monotonically increasing sequence
	// number; a response older than the latest applied one is
	// discarded. This replaces the web front-end's unguarded
	// last-response-wins behavior under rapid filter changes.
	seq     uint64
	applied uint64
}

func New(client *api.Client) *View {
	return &View{client: client}
}

// SetFilters changes the active filters and re-fetches. The zero
// value (models.FilterAll) drops that query parameter entirely.
func (v *View) SetFilters(ctx context.Context, f models.Filters) error {
	v.mu.Lock()
	v.filters = f
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// Filters returns the active filters.
func (v *View) Filters() models.Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// Refresh fetches the full list from the server with the active
// filters. Responses that lost the race to a newer fetch are dropped
// without touching the list.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	filters := v.filters
	v.mu.Unlock()

	requests, err := v.client.ListRequests(ctx, filters)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq < v.applied {
		// stale response, a newer fetch already landed
		return nil
	}
	v.applied = seq
	v.requests = requests
	return nil
}

// Requests returns the last successfully fetched list.
func (v *View) Requests() []models.ServiceRequest {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.requests
}

// UpdateStatus moves a request to a new status, then re-fetches the
// whole list rather than patching the local copy.
func (v *View) UpdateStatus(ctx context.Context, id int, status string) error {
	if _, err := v.client.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// Delete removes a request, then re-fetches the whole list. The
// caller is responsible for only offering this on pending requests;
// out-of-band deletes are the server's to reject.
func (v *View) Delete(ctx context.Context, id int) error {
	if err := v.client.DeleteRequest(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// Find returns the fetched request with the given id, if present.
func (v *View) Find(id int) (models.ServiceRequest, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.requests {
		if r.ID == id {
			return r, true
		}
	}
	return models.ServiceRequest{}, false
}
