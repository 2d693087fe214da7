package task

import "context"

// Executor is the external component that actually runs a job. It receives
// the task after Start has succeeded, reads the resolved settings and output
// path from a snapshot, and reports back through ReportProgress with values
// in [0, 1] followed by exactly one terminal call: Complete, or Fail with a
// message. The executor must tolerate its reports becoming no-ops after a
// user cancellation.
type Executor interface {
	Execute(ctx context.Context, t *Task)
}
