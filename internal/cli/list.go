package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/todo-labs/todo/internal/ops"
	"github.com/todo-labs/todo/internal/task"
	"go.yaml.in/yaml/v3"
)

var (
	listStatus string
	listJSON   bool
	listYAML   bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long:    `List tasks in the order they were added, optionally filtered by status.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status ("+strings.Join(task.StatusNames(), ", ")+")")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var filter task.Status
	if listStatus != "" {
		st, err := task.ParseStatus(listStatus)
		if err != nil {
			return fmt.Errorf("invalid --status: %w", err)
		}
		filter = st
	}

	tasks, err := ops.List(storagePath(), filter)
	if err != nil {
		return err
	}

	switch {
	case listJSON:
		return printListJSON(cmd, tasks)
	case listYAML:
		return printListYAML(cmd, tasks)
	default:
		return printListText(cmd, tasks)
	}
}

func printListText(cmd *cobra.Command, tasks []task.Task) error {
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(out, formatTask(t))
	}
	_, err := fmt.Fprintln(out, countLine(len(tasks)))
	return err
}

func printListJSON(cmd *cobra.Command, tasks []task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func printListYAML(cmd *cobra.Command, tasks []task.Task) error {
	data, err := yaml.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshaling tasks as YAML: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
