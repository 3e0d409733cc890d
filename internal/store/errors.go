package store

import (
	"errors"
	"fmt"
)

// ErrMalformedStore matches any *MalformedStoreError via errors.Is.
var ErrMalformedStore = errors.New("malformed store")

// MalformedStoreError reports a store file that exists but is not a
// well-formed sequence of task records.
type MalformedStoreError struct {
	Path string
	Err  error
}

func (e *MalformedStoreError) Error() string {
	return fmt.Sprintf("malformed store %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode or record error.
func (e *MalformedStoreError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformedStore) match.
func (e *MalformedStoreError) Is(target error) bool {
	return target == ErrMalformedStore
}
