// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form implements the service-request creation form: field
state, local validation, and submission.

# Validation

Every field is checked before any network traffic:

  - type: must be a member of the service-type enum
  - address, description, requesterName: non-empty
  - document: non-empty and checksum-valid (CPF or CNPJ; when the
    DocumentType selector is set, only that type is accepted and the
    error names it)

Validate returns FieldErrors keyed by field name with pt-BR messages;
Submit wraps them in *ValidationError and never touches the network
when any are present.

# Submission

Submit normalizes the document to digits, forces status to PENDING,
and posts the request. Failed submissions preserve the form state so
the user can resubmit; successful ones clear it.
*/
package form
