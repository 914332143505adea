package validators

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/models"
)

// HistoryValidator checks history import requests sent by clients.
type HistoryValidator struct {
	maxItems int
}

func NewHistoryValidator(maxItems int) Validator {
	return &HistoryValidator{maxItems: maxItems}
}

func (v *HistoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HistoryImportRequest:
		return v.validateImport(value)
	case *models.HistoryImportRequest:
		return v.validateImport(*value)
	case models.HistoryEntry:
		return validateEntry(value)
	case *models.HistoryEntry:
		return validateEntry(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *HistoryValidator) validateImport(req models.HistoryImportRequest) error {
	if req.Length != len(req.Entries) {
		return ErrLengthMismatch
	}
	if v.maxItems > 0 && len(req.Entries) > v.maxItems {
		return ErrTooManyEntries
	}

	seen := make(map[string]struct{}, len(req.Entries))
	for _, e := range req.Entries {
		if err := validateEntry(e); err != nil {
			return err
		}
		if _, dup := seen[e.ID]; dup {
			return ErrDuplicateEntryIDs
		}
		seen[e.ID] = struct{}{}
	}

	return nil
}

func validateEntry(e models.HistoryEntry) error {
	if e.ID == "" {
		return ErrEmptyEntryID
	}
	if !e.Type.IsValid() {
		return ErrInvalidType
	}
	if e.Payload == "" {
		return ErrEmptyPayload
	}
	return nil
}
