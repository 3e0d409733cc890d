// Package logging configures diagnostic output for the CLI with
// charmbracelet/log. Diagnostics go to stderr; command results never pass
// through the logger.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/todo-labs/todo/internal/branding"
)

// DefaultLevel keeps routine load/save chatter out of normal runs.
const DefaultLevel = "warn"

// Setup points the package-level charmbracelet logger at w.
func Setup(w io.Writer, level, format string) {
	log.SetOutput(w)
	log.SetPrefix(branding.CLIName())
	log.SetReportTimestamp(false)
	log.SetReportCaller(false)
	log.SetLevel(ParseLevel(level))
	log.SetFormatter(ParseFormatter(format))
}

// ParseLevel parses a level name. Unknown names fall back to DefaultLevel.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name: text (default), json, or logfmt.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
