package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/todo-labs/todo/internal/ops"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		t, err := ops.Complete(storagePath(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task [%d] marked as done: %s\n", t.ID, t.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
