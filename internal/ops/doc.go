// Package ops implements the task operations: Add, List, Complete, and
// Delete. Each call is one transaction over the whole store file: load,
// change in memory, and for mutations save everything back.
package ops
