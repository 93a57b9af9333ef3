// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"sort"
	"strings"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/document"
	"github.com/danielhkuo/urban-services/models"
)

// Validation messages, pt-BR, one per field.
const (
	msgInvalidType      = "Selecione um tipo válido."
	msgAddressRequired  = "Endereço é obrigatório."
	msgDescRequired     = "Descrição é obrigatória."
	msgNameRequired     = "Nome do solicitante é obrigatório."
	msgDocumentRequired = "CPF ou CNPJ é obrigatório."
)

// FieldErrors maps a field name to its inline pt-BR message.
type FieldErrors map[string]string

// ValidationError is returned by Submit when the form fails local
// validation. No network call was made.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, m := range e.Fields {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, " ")
}

// Form holds creation-form state. Field values survive a failed
// submission so the user can correct and resubmit; only a successful
// submission clears them.
type Form struct {
	Type          string
	Address       string
	Description   string
	RequesterName string
	Document      string

	// DocumentType is the CPF/CNPJ selector. When left empty the
	// document is accepted if it passes either checksum.
	DocumentType document.Type
}

// Validate runs every local check and returns the per-field messages,
// or nil when the form is submittable.
func (f *Form) Validate() FieldErrors {
	errs := FieldErrors{}

	if !models.IsValidServiceType(f.Type) {
		errs["type"] = msgInvalidType
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = msgAddressRequired
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = msgDescRequired
	}
	if strings.TrimSpace(f.RequesterName) == "" {
		errs["requesterName"] = msgNameRequired
	}

	if strings.TrimSpace(f.Document) == "" {
		errs["document"] = msgDocumentRequired
	} else if f.DocumentType != "" {
		if err := document.Validate(f.DocumentType, f.Document); err != nil {
			errs["document"] = err.Error()
		}
	} else if !document.IsValid(f.Document) {
		errs["document"] = document.ErrInvalid.Error()
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates and, if the form is clean, creates the request with
// the document normalized to digits and the status forced to PENDING.
// Validation failures abort before any network call. On server or
// transport failure the form keeps its state; on success it is
// cleared.
func (f *Form) Submit(ctx context.Context, client *api.Client) (models.ServiceRequest, error) {
	if errs := f.Validate(); errs != nil {
		return models.ServiceRequest{}, &ValidationError{Fields: errs}
	}

	created, err := client.CreateRequest(ctx, models.CreateServiceRequestRequest{
		Type:          f.Type,
		Address:       strings.TrimSpace(f.Address),
		Description:   strings.TrimSpace(f.Description),
		RequesterName: strings.TrimSpace(f.RequesterName),
		Document:      document.Normalize(f.Document),
		Status:        models.StatusPending,
	})
	if err != nil {
		return models.ServiceRequest{}, err
	}

	f.Clear()
	return created, nil
}

// Clear resets every field, keeping only the document-type selector.
func (f *Form) Clear() {
	f.Type = ""
	f.Address = ""
	f.Description = ""
	f.RequesterName = ""
	f.Document = ""
}
