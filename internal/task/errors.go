package task

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord matches any *MalformedRecordError via errors.Is.
var ErrMalformedRecord = errors.New("malformed task record")

// MalformedRecordError reports a record that is missing a required field or
// holds a value of the wrong type.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed task record: field %q %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrMalformedRecord) match.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
