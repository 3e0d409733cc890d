package cli

import (
	"fmt"
	"strconv"

	"github.com/todo-labs/todo/internal/task"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatTask renders a task as a single human-readable line.
func formatTask(t task.Task) string {
	desc := ""
	if t.Description != "" {
		desc = " — " + t.Description
	}
	return fmt.Sprintf("[%d] %s%s (%s) created %s", t.ID, t.Title, desc, t.Status, t.CreatedAt)
}

// countLine renders "N task(s)" with locale digit grouping.
func countLine(n int) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return printer.Sprintf("%d %s", n, noun)
}

// parseID converts a positional argument to a task id.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q: must be an integer", arg)
	}
	return id, nil
}
