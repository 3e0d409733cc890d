// Package schema checks a todo store file against the embedded JSON Schema
// and reports every problem it finds, rather than stopping at the first one
// the way store.Load does. It backs the doctor command.
package schema
