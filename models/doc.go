// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
service-request API, plus the pt-BR label tables used for display.

# Request Types

Types serialized into outgoing JSON bodies:

  - LoginRequest: email, password
  - CreateServiceRequestRequest: type, address, description, requesterName, document, status
  - UpdateStatusRequest: status

# Response Types

Types parsed from API responses:

  - LoginResponse: access_token, user
  - ServiceRequest: one citizen-submitted request
  - ErrorResponse: error, message

# Constants

Service types (wire values):

	TypeLampReplacement   = "LAMP_REPLACEMENT"
	TypeRoadRepair        = "ROAD_REPAIR"
	TypeGarbageCollection = "GARBAGE_COLLECTION"
	TypeStreetCleaning    = "STREET_CLEANING"
	TypeTreeTrimming      = "TREE_TRIMMING"
	TypeParkMaintenance   = "PARK_MAINTENANCE"

Statuses:

	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"

# Labels

ServiceTypeLabels and RequestStatusLabels hold the pt-BR display strings
("Troca de Lâmpadas", "Pendente", ...). StatusChipColor maps a status to
its chip color (neutral, warning, success).

# Filters

Filters carries the optional type/status narrowing sent as query
parameters. FilterAll (the empty string) means the parameter is omitted
and the server returns everything.
*/
package models
