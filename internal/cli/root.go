package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/todo-labs/todo/internal/branding"
	"github.com/todo-labs/todo/internal/config"
	"github.com/todo-labs/todo/internal/logging"
	"github.com/todo-labs/todo/internal/store"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	storageFlag   string
	logLevelFlag  string
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` tracks short text tasks in a local JSON file.

Tasks are stored in ./todos.json unless --file, TODO_STORAGE_PATH, or the
storage_path setting in ~/.todo/config.yaml point elsewhere.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level := logLevelFlag
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		if level == "" {
			level = logging.DefaultLevel
		}
		format := logFormatFlag
		if format == "" {
			format = config.Get(config.KeyLogFormat)
		}
		logging.Setup(cmd.ErrOrStderr(), level, format)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storageFlag, "file", "f", "", "Path to the task store (default "+store.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Diagnostic log format (text, json, logfmt)")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
// A malformed store exits with 2; every other failure exits with 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, store.ErrMalformedStore):
		return 2
	default:
		return 1
	}
}

// storagePath returns the store file for this invocation.
func storagePath() string {
	return config.StoragePath(storageFlag, store.DefaultPath)
}
