package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/mock"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

var fixedNow = time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)

func newTestHistoryService(t *testing.T) (*historyService, *mock.MockHistoryRepository) {
	t.Helper()
	repo := mock.NewMockHistoryRepository(gomock.NewController(t))

	svc := NewHistoryService(repo, 3, logger.Nop()).(*historyService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestHistoryService_Add(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	ctx := context.Background()

	var stored models.HistoryEntry
	repo.EXPECT().AddEntry(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.HistoryEntry) error {
		stored = e
		return nil
	})

	typed := models.TypedData{Type: models.TypeSMS, Data: []byte(` { "phone": "+1 555", "message": "hi" } `)}
	got, err := svc.Add(ctx, "laptop", typed)
	require.NoError(t, err)

	assert.Equal(t, stored, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "laptop", got.Owner)
	assert.Equal(t, models.TypeSMS, got.Type)
	assert.Equal(t, "smsto:+1555:hi", got.Payload)
	assert.Equal(t, utils.Fingerprint(models.TypeSMS, "smsto:+1555:hi"), got.Fingerprint)
	assert.Equal(t, fixedNow, got.CreatedAt)

	var data models.SMSData
	require.NoError(t, json.Unmarshal(got.Data, &data))
	assert.Equal(t, models.SMSData{Phone: "+1 555", Message: "hi"}, data)
}

func TestHistoryService_Add_InvalidPayload(t *testing.T) {
	svc, _ := newTestHistoryService(t)

	tests := []struct {
		name  string
		typed models.TypedData
		want  string
	}{
		{
			name:  "validation message",
			typed: models.TypedData{Type: models.TypeWifi, Data: []byte(`{"ssid":" "}`)},
			want:  "Please enter a network name (SSID)",
		},
		{
			name:  "unknown type",
			typed: models.TypedData{Type: "fax"},
			want:  "Unknown QR type",
		},
		{
			name:  "malformed data",
			typed: models.TypedData{Type: models.TypeText, Data: []byte(`[1]`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), "laptop", tt.typed)
			require.ErrorIs(t, err, ErrInvalidPayload)
			if tt.want != "" {
				assert.Equal(t, tt.want, err.Error())
			}
		})
	}
}

func TestHistoryService_Add_RepositoryError(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	repo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.Add(context.Background(), "laptop", models.TypedData{Type: models.TypeText, Data: []byte(`{"value":"x"}`)})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestHistoryService_EmptyOwner(t *testing.T) {
	svc, _ := newTestHistoryService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "", models.TypedData{})
	assert.ErrorIs(t, err, ErrEmptyOwner)
	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyOwner)
	assert.ErrorIs(t, svc.Remove(ctx, "", "id"), ErrEmptyOwner)
	assert.ErrorIs(t, svc.Clear(ctx, ""), ErrEmptyOwner)
	assert.ErrorIs(t, svc.Import(ctx, "", models.HistoryImportRequest{}), ErrEmptyOwner)
}

// ── List / Remove / Clear ───────────────────────────────────────────────────

func TestHistoryService_List(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	ctx := context.Background()
	entries := []models.HistoryEntry{{ID: "b"}, {ID: "a"}}

	repo.EXPECT().ListEntries(ctx, "laptop").Return(entries, nil)

	got, err := svc.List(ctx, "laptop")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestHistoryService_Remove_NotFound(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteEntry(ctx, "laptop", "missing").Return(store.ErrHistoryEntryNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, "laptop", "missing"), ErrHistoryEntryNotFound)
}

func TestHistoryService_Clear(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	ctx := context.Background()

	repo.EXPECT().ClearEntries(ctx, "laptop").Return(nil)

	assert.NoError(t, svc.Clear(ctx, "laptop"))
}

// ── Import ──────────────────────────────────────────────────────────────────

func TestHistoryService_Import_FillsOwnerFingerprintAndTime(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	ctx := context.Background()

	req := models.HistoryImportRequest{
		Entries: []models.HistoryEntry{
			{ID: "a", Owner: "spoofed", Type: models.TypeText, Payload: "hi"},
			{ID: "b", Type: models.TypeURL, Payload: "https://a.b", Fingerprint: "kept", CreatedAt: fixedNow.Add(-time.Hour)},
		},
		Length: 2,
	}

	repo.EXPECT().ReplaceEntries(ctx, "laptop", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, got []models.HistoryEntry) error {
			require.Len(t, got, 2)
			assert.Equal(t, "laptop", got[0].Owner)
			assert.Equal(t, utils.Fingerprint(models.TypeText, "hi"), got[0].Fingerprint)
			assert.Equal(t, fixedNow, got[0].CreatedAt)
			assert.Equal(t, "kept", got[1].Fingerprint)
			assert.Equal(t, fixedNow.Add(-time.Hour), got[1].CreatedAt)
			return nil
		})

	require.NoError(t, svc.Import(ctx, "laptop", req))
}

func TestHistoryService_Import_CollapsesSamePayload(t *testing.T) {
	svc, repo := newTestHistoryService(t)
	ctx := context.Background()

	req := models.HistoryImportRequest{
		Entries: []models.HistoryEntry{
			{ID: "old", Type: models.TypeText, Payload: "hi", CreatedAt: fixedNow.Add(-2 * time.Hour)},
			{ID: "url", Type: models.TypeURL, Payload: "https://a.b", CreatedAt: fixedNow.Add(-time.Hour)},
			{ID: "new", Type: models.TypeText, Payload: "hi", CreatedAt: fixedNow.Add(-time.Minute)},
		},
		Length: 3,
	}

	repo.EXPECT().ReplaceEntries(ctx, "laptop", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, got []models.HistoryEntry) error {
			require.Len(t, got, 2)
			assert.Equal(t, "new", got[0].ID)
			assert.Equal(t, fixedNow.Add(-time.Minute), got[0].CreatedAt)
			assert.Equal(t, "url", got[1].ID)
			assert.NotEqual(t, got[0].Fingerprint, got[1].Fingerprint)
			return nil
		})

	require.NoError(t, svc.Import(ctx, "laptop", req))
}

func TestHistoryService_Import_Rejected(t *testing.T) {
	svc, _ := newTestHistoryService(t)

	req := models.HistoryImportRequest{
		Entries: []models.HistoryEntry{{ID: "a", Type: models.TypeText, Payload: "hi"}},
		Length:  5,
	}

	err := svc.Import(context.Background(), "laptop", req)
	assert.ErrorIs(t, err, ErrInvalidHistoryImport)
}
