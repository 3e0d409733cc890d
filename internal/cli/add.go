package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/todo-labs/todo/internal/ops"
)

var addDescription string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := ops.Add(storagePath(), args[0], addDescription)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added task [%d]: %s\n", t.ID, t.Title)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Optional task description")
	rootCmd.AddCommand(addCmd)
}
