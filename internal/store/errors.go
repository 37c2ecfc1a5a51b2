package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when no synced entity has the requested
	// local id.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrEndpointNotFound is returned when an endpoint lookup misses, and when
	// a write references an endpoint that does not exist.
	ErrEndpointNotFound = errors.New("endpoint was not found")

	// ErrRemoteIDAlreadyExists is returned when a second local record would
	// be bound to the same remote identifier on one endpoint.
	ErrRemoteIDAlreadyExists = errors.New("remote id already exists for endpoint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow  = errors.New("failed to scan row")
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload and ErrDecodingPayload wrap JSON failures of the
	// stored kind-specific payload column.
	ErrEncodingPayload = errors.New("failed to encode entity payload")
	ErrDecodingPayload = errors.New("failed to decode entity payload")
)
