package store

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository persists generated payloads per owner, newest first.
type HistoryRepository interface {
	// AddEntry stores entry, replacing any entry of the same owner with an
	// equal fingerprint, and prunes the owner's history to the configured size.
	AddEntry(ctx context.Context, entry models.HistoryEntry) error
	ListEntries(ctx context.Context, owner string) ([]models.HistoryEntry, error)
	DeleteEntry(ctx context.Context, owner, id string) error
	ClearEntries(ctx context.Context, owner string) error
	// ReplaceEntries swaps the owner's whole history for entries.
	ReplaceEntries(ctx context.Context, owner string, entries []models.HistoryEntry) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
