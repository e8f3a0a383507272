package tracker

import "errors"

// Sentinel errors for the failure modes callers are expected to branch on.
// They are wrapped with context at the point of failure, so match them with
// [errors.Is] rather than equality.
var (
	// ErrMissingField reports a transaction submitted without a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidAmount reports an amount that is not a number greater than zero.
	ErrInvalidAmount = errors.New("amount must be a number greater than zero")

	// ErrImportFormat reports an import payload that is not a valid snapshot.
	ErrImportFormat = errors.New("invalid import format")

	// ErrStorageUnavailable reports that the state directory cannot be read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
