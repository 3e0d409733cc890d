package task

import (
	"encoding/json"
	"fmt"
	"math"
)

// Field names of the persisted record.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
)

// Record is the field-for-field mapping of a Task used for structured storage.
type Record map[string]any

// Record returns the task as a storage record.
func (t Task) Record() Record {
	return Record{
		FieldID:          t.ID,
		FieldTitle:       t.Title,
		FieldDescription: t.Description,
		FieldStatus:      string(t.Status),
		FieldCreatedAt:   t.CreatedAt,
	}
}

// FromRecord rebuilds a Task from a storage record. Description defaults to
// the empty string when absent; every other field is required.
func FromRecord(r Record) (Task, error) {
	id, err := intField(r, FieldID)
	if err != nil {
		return Task{}, err
	}
	if id <= 0 {
		return Task{}, &MalformedRecordError{Field: FieldID, Reason: fmt.Sprintf("must be positive, got %d", id)}
	}

	title, err := stringField(r, FieldTitle, true)
	if err != nil {
		return Task{}, err
	}
	description, err := stringField(r, FieldDescription, false)
	if err != nil {
		return Task{}, err
	}
	rawStatus, err := stringField(r, FieldStatus, true)
	if err != nil {
		return Task{}, err
	}
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return Task{}, &MalformedRecordError{Field: FieldStatus, Reason: err.Error()}
	}
	createdAt, err := stringField(r, FieldCreatedAt, true)
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   createdAt,
	}, nil
}

func stringField(r Record, key string, required bool) (string, error) {
	raw, ok := r[key]
	if !ok {
		if required {
			return "", &MalformedRecordError{Field: key, Reason: "is missing"}
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &MalformedRecordError{Field: key, Reason: fmt.Sprintf("must be a string, got %T", raw)}
	}
	return s, nil
}

// intField reads an integral id. It accepts json.Number as decoded by the
// store (including whole-number forms such as 1.0 or 1e0), float64 from a
// plain json.Unmarshal, and native ints from Record. Values outside the
// range of int are rejected.
func intField(r Record, key string) (int, error) {
	raw, ok := r[key]
	if !ok {
		return 0, &MalformedRecordError{Field: key, Reason: "is missing"}
	}
	notInt := &MalformedRecordError{Field: key, Reason: fmt.Sprintf("must be an integer, got %v", raw)}

	var n int64
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		n = v
	case float64:
		if !wholeFloat(v) {
			return 0, notInt
		}
		n = int64(v)
	case json.Number:
		if n, ok = WholeNumber(v); !ok {
			return 0, notInt
		}
	default:
		return 0, notInt
	}

	if n > math.MaxInt || n < math.MinInt {
		return 0, &MalformedRecordError{Field: key, Reason: fmt.Sprintf("is out of range, got %v", raw)}
	}
	return int(n), nil
}

// WholeNumber converts a JSON number with no fractional part to int64.
// "1", "1.0" and "1e0" all yield 1.
func WholeNumber(num json.Number) (int64, bool) {
	if n, err := num.Int64(); err == nil {
		return n, true
	}
	f, err := num.Float64()
	if err != nil || !wholeFloat(f) {
		return 0, false
	}
	return int64(f), true
}

// wholeFloat reports whether f is integral and fits in an int64.
func wholeFloat(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}
