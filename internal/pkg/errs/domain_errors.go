package errs

import "errors"

// Sentinel errors shared by the usecase layer and the HTTP edge
var (
	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Ledger errors
	ErrUnavailable     = errors.New("book unavailable")
	ErrDuplicateActive = errors.New("active reservation already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Storage errors
	ErrCorruptTable            = errors.New("corrupt table")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
