// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the urban-services command-line client.

urban-services registers and tracks municipal service requests
(streetlamp replacement, road repair, garbage collection, ...) against
a remote HTTP API. It keeps an admin session in a local state file and
validates CPF/CNPJ documents before anything leaves the machine.

# Usage

	urban-services list -t GARBAGE_COLLECTION -s PENDING
	urban-services create -t ROAD_REPAIR --address "Rua A, 123" \
	    --description "Buraco na via" --name "Maria" --document 111.444.777-35
	urban-services login -e admin@prefeitura.gov.br -p secret
	urban-services status 12 IN_PROGRESS
	urban-services delete 12

Bare invocation prints the welcome screen and command list.

# Configuration

	API_URL    (-a): base URL of the service-request API
	                 (default: http://localhost:3000)
	STATE_PATH (-s): local state file (default under the user config dir)
	NO_COLOR         disable ANSI colors

A .env file in the working directory is honored.

# Architecture

The client is assembled from small packages with explicit wiring:

  - cliparse: configuration parsing
  - store: durable key-value state (SQLite)
  - session: authentication state over store + api
  - api: HTTP client with bearer credential
  - document: CPF/CNPJ validation and formatting
  - form: creation-form state and validation
  - listview: list fetching (race-guarded) and rendering
  - commands: the user-facing operations

See package documentation for each component.
*/
package main
