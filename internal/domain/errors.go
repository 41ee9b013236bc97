package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrSessionEnded    = errors.New("session already ended")
	ErrSessionNotFound = errors.New("session not found")
	ErrTagExists       = errors.New("tag already exists")
	ErrTagNotFound     = errors.New("tag not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrUnknownSetting  = errors.New("unknown setting")
)

// StorageError reports a failure of the underlying store, such as an I/O
// error or a constraint violation. Not-found conditions are reported with
// the sentinel errors above instead.
type StorageError struct {
	Err error
	Op  string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for the given operation
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError in its chain
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
