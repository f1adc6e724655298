// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "errors"

var (
	// ErrNotFound is returned when a referenced school or survey title does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrMalformedRecord flags a value that would break the delimited encoding.
	ErrMalformedRecord = errors.New("malformed record")
)

// StorageError wraps a failure reported by the Store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr passes ErrNotFound through untouched and wraps everything else.
func storageErr(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
