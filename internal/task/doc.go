// Package task defines the Task record, its pending/done status, and the
// record mapping used to persist it. Only Status changes after creation;
// every other field is written once by New.
package task
