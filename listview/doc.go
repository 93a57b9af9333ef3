// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package listview fetches and renders the service-request list.

# Fetching

A View owns the active type/status filters and the last list the
server returned. Changing a filter re-fetches the whole list with the
filters as query parameters; the server is the only place filtering
happens. Mutations (status update, delete) also re-fetch rather than
patching local state, trading a request for consistency simplicity.

Concurrent fetches are tagged with a monotonically increasing sequence
number and a response older than the latest applied one is discarded,
so rapid filter changes cannot leave a stale list on screen. A failed
fetch leaves the previous list visible.

# Rendering

Renderer prints each request with its pt-BR type label, formatted
document (mask chosen by digit length, raw otherwise), a status chip
colored neutral/warning/success, and a relative timestamp (humanize
with pt-BR magnitudes). Authenticated sessions also see the
status-change affordance (current status marked "(atual)", not hidden)
and, on pending items only, the delete affordance.
*/
package listview
