package ops

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/todo-labs/todo/internal/store"
	"github.com/todo-labs/todo/internal/task"
)

// Add appends a new pending task to the store at path and returns it.
func Add(path, title, description string) (task.Task, error) {
	tasks, err := store.Load(path)
	if err != nil {
		return task.Task{}, err
	}

	t := task.New(store.NextID(tasks), title, description)
	tasks = append(tasks, t)
	if err := store.Save(tasks, path); err != nil {
		return task.Task{}, err
	}

	log.Debug("added task", "id", t.ID)
	return t, nil
}

// List returns the stored tasks in file order. A non-empty filter keeps only
// tasks with that status. List never writes.
func List(path string, filter task.Status) ([]task.Task, error) {
	if filter != "" && !filter.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter)
	}

	tasks, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return tasks, nil
	}

	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == filter {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Complete marks the task with id as done and returns the updated task.
// Completing an already done task saves it again unchanged.
func Complete(path string, id int) (task.Task, error) {
	tasks, err := store.Load(path)
	if err != nil {
		return task.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return task.Task{}, &TaskNotFoundError{ID: id}
	}

	if tasks[i].IsDone() {
		log.Debug("task already done", "id", id)
	}
	tasks[i].Status = task.StatusDone
	if err := store.Save(tasks, path); err != nil {
		return task.Task{}, err
	}

	log.Debug("completed task", "id", id)
	return tasks[i], nil
}

// Delete removes the task with id and returns it as it was before removal.
// The remaining tasks keep their relative order.
func Delete(path string, id int) (task.Task, error) {
	tasks, err := store.Load(path)
	if err != nil {
		return task.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return task.Task{}, &TaskNotFoundError{ID: id}
	}

	removed := tasks[i]
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := store.Save(tasks, path); err != nil {
		return task.Task{}, err
	}

	log.Debug("deleted task", "id", id)
	return removed, nil
}

// indexOf returns the position of the first task with id, or -1.
func indexOf(tasks []task.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
