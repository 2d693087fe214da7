// Package task tracks in-flight processing jobs from creation to a terminal
// state.
//
// A Registry owns the monotonic id counter and the live task set; tasks are
// created Pending and advance through Running to exactly one of Completed,
// Failed, or Cancelled. Terminal states absorb every further event, so a late
// progress report or a second cancel is a no-op rather than an error. Each
// task guards its mutable fields with its own mutex so a polling reader sees
// consistent snapshots while the executor reports progress.
//
// Cancellation is optimistic: the status flips to Cancelled synchronously
// with the user's request, and the encoder kill is fired asynchronously
// without waiting for confirmation. If the process survives, the status does
// not roll back.
package task
