package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

type clientSyncService struct {
	history  HistoryService
	adapter  adapter.ServerAdapter
	deviceID string

	mu         sync.Mutex
	lastPushed string
	pushedOnce bool

	logger *logger.Logger
}

func NewClientSyncService(history HistoryService, serverAdapter adapter.ServerAdapter, deviceID string, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		history:  history,
		adapter:  serverAdapter,
		deviceID: deviceID,
		logger:   logger,
	}
}

func (s *clientSyncService) Push(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.history.List(ctx, s.deviceID)
	if err != nil {
		return fmt.Errorf("list local history: %w", err)
	}

	signature := historySignature(entries)
	if s.pushedOnce && signature == s.lastPushed {
		return nil
	}

	if err = s.adapter.PushHistory(ctx, entries); err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.Push").
			Int("entries", len(entries)).
			Msg("history push failed")
		return fmt.Errorf("push history: %w", err)
	}

	s.lastPushed = signature
	s.pushedOnce = true
	s.logger.Debug().
		Str("func", "clientSyncService.Push").
		Int("entries", len(entries)).
		Msg("history pushed")
	return nil
}

func (s *clientSyncService) ServerVersion(ctx context.Context) (string, error) {
	v, err := s.adapter.Version(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "clientSyncService.ServerVersion").Msg("server version unavailable")
		return "", fmt.Errorf("server version: %w", err)
	}
	return v, nil
}

// historySignature identifies a history state. Entries are immutable, so
// the ordered ids are enough.
func historySignature(entries []models.HistoryEntry) string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return strings.Join(ids, ",")
}
