package database

import "errors"

var (
	// ErrStorageUnavailable means the database file could not be opened or
	// created. Fatal to startup; the caller surfaces a retry path.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConstraintViolation means a required column is missing or null.
	// Treated as a programmer error at the call site.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDuplicateKey means an insert hit an existing primary key. Ids are
	// generated uniquely, so this signals a bug rather than a user action.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownTable means the table name is outside the declared schema.
	// Table names are interpolated into statements, so this check is also
	// the injection guard.
	ErrUnknownTable = errors.New("unknown table")
)
