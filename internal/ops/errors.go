package ops

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound matches any *TaskNotFoundError via errors.Is.
var ErrTaskNotFound = errors.New("task not found")

// ErrInvalidStatus is returned by List for a filter outside pending/done.
var ErrInvalidStatus = errors.New("invalid status filter")

// TaskNotFoundError reports an id with no matching task in the store.
type TaskNotFoundError struct {
	ID int
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.ID)
}

// Is lets errors.Is(err, ErrTaskNotFound) match.
func (e *TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}
