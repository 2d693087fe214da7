// Package prockill terminates encoder processes by name, best-effort.
//
// It exists to back user cancellation: the task registry flips status first
// and then fires this termination without waiting, so nothing here returns an
// error. A kill that misses simply leaves an orphan the OS will show.
package prockill
