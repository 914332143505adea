package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrHistoryEntryNotFound is returned when a delete targets an entry that
	// does not exist for the given owner.
	ErrHistoryEntryNotFound = errors.New("history entry was not found")

	// ErrNoDSN is returned when the storage is opened without a DSN.
	ErrNoDSN = errors.New("database dsn is empty")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRows         = errors.New("failed to scan history rows")
)
