// Package cli defines the Cobra command tree for the todo CLI. Each file
// registers one top-level command with the root command. Commands resolve the
// store path, call into internal/ops, and handle only flag parsing and output
// formatting.
package cli
