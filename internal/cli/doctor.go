package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/todo-labs/todo/internal/branding"
	"github.com/todo-labs/todo/internal/config"
	"github.com/todo-labs/todo/internal/schema"
	"github.com/todo-labs/todo/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the task store and configuration",
	Long: `Run diagnostic checks on the task store file and the config file.

Unlike other commands, doctor reports every schema problem in the store,
including duplicate ids, instead of stopping at the first one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		checkConfigFile(out)
		return checkStore(out, storagePath())
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func checkConfigFile(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [MISS] %s does not exist (defaults in use)\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}

// checkStore validates the store file. It returns a MalformedStoreError when
// the schema check finds problems.
func checkStore(w io.Writer, path string) error {
	fmt.Fprintln(w, "Store check:")

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		fmt.Fprintf(w, "         It will be created by '%s add'\n", branding.CLIName())
		return nil
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return err
	}
	if info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s is a directory\n", path)
		return fmt.Errorf("store path %s is a directory", path)
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)

	res, err := schema.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	if res.Valid {
		fmt.Fprintf(w, "  [ OK ] %s, schema valid\n", countLine(res.Tasks))
		return nil
	}

	for _, issue := range res.Issues {
		fmt.Fprintf(w, "  [FAIL] %s\n", issue)
	}
	return &store.MalformedStoreError{
		Path: path,
		Err:  errors.New(printer.Sprintf("%d schema issue(s)", len(res.Issues))),
	}
}
