package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
)

// Storages groups the repositories and owns their connection.
type Storages struct {
	HistoryRepository HistoryRepository

	db *DB
}

// NewStorages connects to dsn, applies migrations and builds the
// repositories. The same code backs the server database and the client's
// local SQLite file.
func NewStorages(ctx context.Context, dsn string, maxItems int, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnect(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("history database ready")

	return &Storages{
		HistoryRepository: NewHistoryRepository(db, maxItems, log),
		db:                db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
