package models

import "time"

// Service type constants (wire values expected by the API)
const (
	TypeLampReplacement   = "LAMP_REPLACEMENT"
	TypeRoadRepair        = "ROAD_REPAIR"
	TypeGarbageCollection = "GARBAGE_COLLECTION"
	TypeStreetCleaning    = "STREET_CLEANING"
	TypeTreeTrimming      = "TREE_TRIMMING"
	TypeParkMaintenance   = "PARK_MAINTENANCE"
)

// Request status constants
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// FilterAll is the "no filter" sentinel. When a filter holds this value
// the query parameter is omitted entirely and the server returns the
// unfiltered set.
const FilterAll = ""

// ServiceTypes lists every valid service type in display order.
var ServiceTypes = []string{
	TypeLampReplacement,
	TypeRoadRepair,
	TypeGarbageCollection,
	TypeStreetCleaning,
	TypeTreeTrimming,
	TypeParkMaintenance,
}

// RequestStatuses lists every valid request status in lifecycle order.
var RequestStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
}

// IsValidServiceType reports whether t is a member of the service type enum.
func IsValidServiceType(t string) bool {
	for _, v := range ServiceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidRequestStatus reports whether s is a member of the status enum.
func IsValidRequestStatus(s string) bool {
	for _, v := range RequestStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateServiceRequestRequest struct {
	Type          string `json:"type"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	RequesterName string `json:"requesterName"`
	Document      string `json:"document"`
	Status        string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type ServiceRequest struct {
	ID            int       `json:"id"`
	Type          string    `json:"type"`
	Address       string    `json:"address"`
	Description   string    `json:"description"`
	RequesterName string    `json:"requesterName"`
	Document      string    `json:"document"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Filters selects the subset of requests fetched from the server.
// The server is the sole source of filtering logic; nothing is
// filtered client-side.
type Filters struct {
	Type   string
	Status string
}
