package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup by email matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidID is returned when an id is not a 24 hex character
	// ObjectID.
	ErrInvalidID = errors.New("invalid document id")

	// ErrUnknownDriver is returned by NewStorages for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrConnecting is returned when the store cannot be reached at startup.
	ErrConnecting = errors.New("error connecting to the document store")
)

// Low-level operation errors. Any failure of the underlying driver is wrapped
// in one of these.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a read or write against the store
	// fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRows is returned when a SQL result row cannot be scanned.
	ErrScanningRows = errors.New("error scanning rows")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into its model.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrSchemaNotMigrated is returned by the Postgres backend when a
	// collection table is missing.
	ErrSchemaNotMigrated = errors.New("database schema is not migrated")
)
