package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
)

func entry(id string) models.HistoryEntry {
	return models.HistoryEntry{ID: id, Type: models.TypeText, Payload: "hello"}
}

func TestHistoryValidator_Import(t *testing.T) {
	v := NewHistoryValidator(3)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.HistoryImportRequest
		wantErr error
	}{
		{name: "empty", req: models.HistoryImportRequest{}},
		{name: "valid", req: models.HistoryImportRequest{Entries: []models.HistoryEntry{entry("a"), entry("b")}, Length: 2}},
		{name: "length mismatch", req: models.HistoryImportRequest{Entries: []models.HistoryEntry{entry("a")}, Length: 2}, wantErr: ErrLengthMismatch},
		{
			name:    "too many",
			req:     models.HistoryImportRequest{Entries: []models.HistoryEntry{entry("a"), entry("b"), entry("c"), entry("d")}, Length: 4},
			wantErr: ErrTooManyEntries,
		},
		{name: "duplicate ids", req: models.HistoryImportRequest{Entries: []models.HistoryEntry{entry("a"), entry("a")}, Length: 2}, wantErr: ErrDuplicateEntryIDs},
		{name: "missing id", req: models.HistoryImportRequest{Entries: []models.HistoryEntry{entry("")}, Length: 1}, wantErr: ErrEmptyEntryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHistoryValidator_Entry(t *testing.T) {
	v := NewHistoryValidator(0)
	ctx := context.Background()

	e := entry("a")
	assert.NoError(t, v.Validate(ctx, &e))

	e.Type = "fax"
	assert.ErrorIs(t, v.Validate(ctx, e), ErrInvalidType)

	e = entry("a")
	e.Payload = ""
	assert.ErrorIs(t, v.Validate(ctx, e), ErrEmptyPayload)

	assert.ErrorIs(t, v.Validate(ctx, "x"), ErrUnsupportedType)
}
