package task

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// CreatedAtLayout is the ISO-8601 layout used for created_at. UTC instants
// render their offset as "+00:00".
const CreatedAtLayout = "2006-01-02T15:04:05.000000-07:00"

// Status tracks completion of a task.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusPending, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// StatusNames returns the valid statuses as strings, in lifecycle order.
func StatusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return names
}

// ParseStatus converts a string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q (want one of: %s)", s, strings.Join(StatusNames(), ", "))
	}
	return st, nil
}

// Task is a single to-do item.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// New builds a pending task stamped with the current UTC time.
// Title and description are taken as given; an empty title is accepted.
func New(id int, title, description string) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC().Format(CreatedAtLayout),
	}
}

// IsDone reports whether the task has been completed.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}
