package store

import (
	"errors"
	"fmt"
)

// StorageError reports a failure of the durable medium: the database is
// unavailable, out of space, or a read/write went bad. Callers surface
// it to the user and leave their in-memory view unchanged.
type StorageError struct {
	// Op names the operation that failed, e.g. "upsert entry".
	Op string

	// Err is the underlying driver error.
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s", e.Op)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// storageErr wraps a raw error as a StorageError unless it already is
// one, keeping the taxonomy flat.
func storageErr(op string, err error) error {
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
