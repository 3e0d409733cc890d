// Package store persists the task collection as a single JSON file.
//
// Every call reads or rewrites the whole file. A missing file is an empty
// store; a file that exists but does not decode is a MalformedStoreError.
//
// Save is not atomic: the file is truncated and rewritten in place, so a
// crash or full disk mid-write can leave it corrupt. Concurrent processes
// writing the same path race, and the last writer wins.
package store
