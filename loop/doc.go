// Package loop is a small frame scheduler. Systems run in registration order
// on the caller's goroutine, each frame ends by flushing deferred commands,
// and per-system execution times are recorded for inspection.
package loop
