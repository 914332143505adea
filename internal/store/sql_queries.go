package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qr-forge/models"
)

const historyTable = "history"

var historyColumns = []string{"id", "owner", "type", "data", "payload", "fingerprint", "created_at"}

func buildInsertEntryQuery(b sq.StatementBuilderType, e models.HistoryEntry) (string, []any, error) {
	return b.Insert(historyTable).
		Columns(historyColumns...).
		Values(e.ID, e.Owner, string(e.Type), string(e.Data), e.Payload, e.Fingerprint, e.CreatedAt.UTC()).
		ToSql()
}

func buildDeleteByFingerprintQuery(b sq.StatementBuilderType, owner, fingerprint string) (string, []any, error) {
	return b.Delete(historyTable).
		Where(sq.Eq{"owner": owner, "fingerprint": fingerprint}).
		ToSql()
}

// buildPruneQuery deletes every entry of owner except the newest keep.
func buildPruneQuery(b sq.StatementBuilderType, owner string, keep uint64) (string, []any, error) {
	// the subquery is rendered with '?' and rewritten by the outer builder's
	// placeholder format together with the outer arguments
	newest, newestArgs, err := sq.Select("id").
		From(historyTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("created_at DESC", "id DESC").
		Limit(keep).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return b.Delete(historyTable).
		Where(sq.Eq{"owner": owner}).
		Where(sq.Expr("id NOT IN ("+newest+")", newestArgs...)).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Select(historyColumns...).
		From(historyTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, owner, id string) (string, []any, error) {
	return b.Delete(historyTable).
		Where(sq.Eq{"owner": owner, "id": id}).
		ToSql()
}

func buildClearEntriesQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Delete(historyTable).
		Where(sq.Eq{"owner": owner}).
		ToSql()
}
