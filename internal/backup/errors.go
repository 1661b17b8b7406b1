package backup

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed backup document: the candidate is
// missing one of the mandatory top-level fields or a field has the wrong
// shape. Validation happens before any destructive action, so the store
// is untouched when this error is returned.
type ValidationError struct {
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed backup format: %v", e.Err)
	}
	return "malformed backup format"
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RestoreError reports a failure after the store was wiped during a
// restore: re-inserting entries or saving a profile went wrong mid-way.
// The store may be partially populated. Distinguished from
// ValidationError so callers can warn the user that data may be
// incomplete and a re-run is advised.
type RestoreError struct {
	// Inserted counts the entries written before the failure.
	Inserted int

	// Err is the failure that interrupted the restore.
	Err error
}

// Error implements the error interface.
func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore incomplete after %d entries: %v", e.Inserted, e.Err)
}

// Unwrap returns the underlying error.
func (e *RestoreError) Unwrap() error {
	return e.Err
}

// IsRestoreError reports whether err is (or wraps) a RestoreError.
func IsRestoreError(err error) bool {
	var re *RestoreError
	return errors.As(err, &re)
}
