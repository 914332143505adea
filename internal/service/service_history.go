// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/payload"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

type historyService struct {
	repo      store.HistoryRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewHistoryService(repo store.HistoryRepository, maxItems int, logger *logger.Logger) HistoryService {
	return &historyService{
		repo:      repo,
		validator: validators.NewHistoryValidator(maxItems),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Add encodes typed and stores it as the owner's newest entry. The stored
// data is the decoded record re-marshalled, so equal inputs compare equal.
func (s *historyService) Add(ctx context.Context, owner string, typed models.TypedData) (models.HistoryEntry, error) {
	if owner == "" {
		return models.HistoryEntry{}, ErrEmptyOwner
	}

	p, err := typed.Payload()
	if err != nil {
		if errors.Is(err, models.ErrUnknownDataType) {
			return models.HistoryEntry{}, invalidPayload(payload.ErrUnknownType.Error())
		}
		return models.HistoryEntry{}, invalidPayload(err.Error())
	}

	res := payload.Encode(p)
	if !res.Valid {
		return models.HistoryEntry{}, invalidPayload(res.Error)
	}

	canonical, err := models.NewTypedData(p)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	entry := models.HistoryEntry{
		ID:          s.ids.Generate(),
		Owner:       owner,
		Type:        canonical.Type,
		Data:        canonical.Data,
		Payload:     res.Encoded,
		Fingerprint: utils.Fingerprint(canonical.Type, res.Encoded),
		CreatedAt:   s.now().UTC(),
	}

	if err = s.repo.AddEntry(ctx, entry); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("error saving history entry: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "historyService.Add").
		Str("owner", owner).
		Str("id", entry.ID).
		Msg("history entry added")
	return entry, nil
}

func (s *historyService) List(ctx context.Context, owner string) ([]models.HistoryEntry, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	return s.repo.ListEntries(ctx, owner)
}

func (s *historyService) Remove(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrEmptyOwner
	}

	err := s.repo.DeleteEntry(ctx, owner, id)
	if errors.Is(err, store.ErrHistoryEntryNotFound) {
		return ErrHistoryEntryNotFound
	}
	return err
}

func (s *historyService) Clear(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrEmptyOwner
	}
	return s.repo.ClearEntries(ctx, owner)
}

// Import validates the upload and replaces the owner's history with it.
// Missing fingerprints are derived from the stored payload.
func (s *historyService) Import(ctx context.Context, owner string, req models.HistoryImportRequest) error {
	log := logger.FromContext(ctx)

	if owner == "" {
		return ErrEmptyOwner
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "historyService.Import").Str("owner", owner).Msg("rejected history import")
		return fmt.Errorf("%w: %w", ErrInvalidHistoryImport, err)
	}

	entries := make([]models.HistoryEntry, 0, len(req.Entries))
	byFingerprint := make(map[string]int, len(req.Entries))
	for _, e := range req.Entries {
		e.Owner = owner
		if e.Fingerprint == "" {
			e.Fingerprint = utils.Fingerprint(e.Type, e.Payload)
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = s.now().UTC()
		}

		// one row per payload: the newest copy wins, the list keeps its order
		if i, dup := byFingerprint[e.Fingerprint]; dup {
			if e.CreatedAt.After(entries[i].CreatedAt) {
				entries[i] = e
			}
			continue
		}
		byFingerprint[e.Fingerprint] = len(entries)
		entries = append(entries, e)
	}

	if err := s.repo.ReplaceEntries(ctx, owner, entries); err != nil {
		return fmt.Errorf("error importing history: %w", err)
	}

	log.Info().
		Str("func", "historyService.Import").
		Str("owner", owner).
		Int("entries", len(entries)).
		Msg("history imported")
	return nil
}
