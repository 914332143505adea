// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

// historyRepository is the SQL implementation of [HistoryRepository]. It
// works against SQLite and PostgreSQL; the placeholder format follows the
// dialect of the embedded [*DB].
type historyRepository struct {
	*DB
	maxItems int
	logger   *logger.Logger
}

// NewHistoryRepository returns a repository that keeps at most maxItems
// entries per owner. maxItems <= 0 disables pruning.
func NewHistoryRepository(db *DB, maxItems int, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:       db,
		maxItems: maxItems,
		logger:   logger,
	}
}

func (h *historyRepository) AddEntry(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	err := h.withRetry(ctx, func() error {
		return h.inTx(ctx, func(tx *sql.Tx) error {
			if err := h.exec(ctx, tx, statement(buildDeleteByFingerprintQuery(h.builder(), entry.Owner, entry.Fingerprint))); err != nil {
				return err
			}
			if err := h.exec(ctx, tx, statement(buildInsertEntryQuery(h.builder(), entry))); err != nil {
				return err
			}
			return h.prune(ctx, tx, entry.Owner)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.AddEntry").
			Str("owner", entry.Owner).
			Str("id", entry.ID).
			Msg("failed to add history entry")
		return err
	}

	log.Debug().
		Str("func", "historyRepository.AddEntry").
		Str("owner", entry.Owner).
		Str("id", entry.ID).
		Msg("history entry added")
	return nil
}

func (h *historyRepository) ListEntries(ctx context.Context, owner string) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(h.builder(), owner)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.ListEntries").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListEntries").
			Str("owner", owner).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var (
			e    models.HistoryEntry
			typ  string
			data string
		)
		if err = rows.Scan(&e.ID, &e.Owner, &typ, &data, &e.Payload, &e.Fingerprint, &e.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "historyRepository.ListEntries").
				Str("owner", owner).
				Int("row", len(entries)).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Type = models.QRDataType(typ)
		e.Data = json.RawMessage(data)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "historyRepository.ListEntries").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (h *historyRepository) DeleteEntry(ctx context.Context, owner, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(h.builder(), owner, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = h.withRetry(ctx, func() error {
		res, execErr := h.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.DeleteEntry").
			Str("owner", owner).
			Str("id", id).
			Msg("failed to delete history entry")
		return err
	}

	if affected == 0 {
		return ErrHistoryEntryNotFound
	}
	return nil
}

func (h *historyRepository) ClearEntries(ctx context.Context, owner string) error {
	log := logger.FromContext(ctx)

	err := h.withRetry(ctx, func() error {
		return h.exec(ctx, h.DB.DB, statement(buildClearEntriesQuery(h.builder(), owner)))
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ClearEntries").
			Str("owner", owner).
			Msg("failed to clear history")
		return err
	}
	return nil
}

func (h *historyRepository) ReplaceEntries(ctx context.Context, owner string, entries []models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	err := h.withRetry(ctx, func() error {
		return h.inTx(ctx, func(tx *sql.Tx) error {
			if err := h.exec(ctx, tx, statement(buildClearEntriesQuery(h.builder(), owner))); err != nil {
				return err
			}
			for _, e := range entries {
				e.Owner = owner
				if err := h.exec(ctx, tx, statement(buildInsertEntryQuery(h.builder(), e))); err != nil {
					return err
				}
			}
			return h.prune(ctx, tx, owner)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ReplaceEntries").
			Str("owner", owner).
			Int("entries", len(entries)).
			Msg("failed to replace history")
		return err
	}
	return nil
}

func (h *historyRepository) prune(ctx context.Context, tx *sql.Tx, owner string) error {
	if h.maxItems <= 0 {
		return nil
	}
	return h.exec(ctx, tx, statement(buildPruneQuery(h.builder(), owner, uint64(h.maxItems))))
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// stmt is the output of one of the build*Query helpers.
type stmt struct {
	query string
	args  []any
	err   error
}

func statement(query string, args []any, err error) stmt {
	return stmt{query: query, args: args, err: err}
}

func (h *historyRepository) exec(ctx context.Context, e execer, s stmt) error {
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, s.err)
	}
	if _, err := e.ExecContext(ctx, s.query, s.args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
