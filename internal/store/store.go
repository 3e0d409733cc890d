package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/todo-labs/todo/internal/task"
)

// DefaultPath is the store file used when no other path is configured.
const DefaultPath = "todos.json"

// Load reads every task stored at path, in file order.
func Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("store file absent, starting empty", "path", path)
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}

	tasks, err := decode(data)
	if err != nil {
		return nil, &MalformedStoreError{Path: path, Err: err}
	}
	log.Debug("loaded tasks", "path", path, "count", len(tasks))
	return tasks, nil
}

// Save writes tasks, in order, as the complete content of path.
func Save(tasks []task.Task, path string) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating store directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing store %s: %w", path, err)
	}
	log.Debug("saved tasks", "path", path, "count", len(tasks))
	return nil
}

// NextID returns one more than the largest id in tasks, or 1 when empty.
// Deleting the task holding the largest id frees that id for the next add.
func NextID(tasks []task.Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// decode parses a JSON array of task records.
func decode(data []byte) ([]task.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []task.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if records == nil {
		return nil, errors.New("top-level value is not an array")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after top-level array")
	}

	tasks := make([]task.Task, 0, len(records))
	for i, r := range records {
		t, err := task.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
