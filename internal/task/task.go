package task

import (
	"sync"
	"time"

	"framemill/internal/settings"
)

// Task is one submitted processing job. All mutable state is guarded by mu;
// readers use Snapshot or the accessor methods rather than holding the task
// across calls.
type Task struct {
	id         int64
	operation  settings.Operation
	inputFiles []string
	outputFile string

	mu         sync.Mutex
	video      *settings.VideoSettings
	audio      *settings.AudioSettings
	progress   float64
	status     Status
	errMsg     string
	startTime  time.Time
	completion time.Duration
	now        func() time.Time
}

// Snapshot is an immutable copy of a task's state, safe to hand to display
// code while the executor keeps reporting.
type Snapshot struct {
	ID             int64
	Operation      settings.Operation
	InputFiles     []string
	OutputFile     string
	VideoSettings  *settings.VideoSettings
	AudioSettings  *settings.AudioSettings
	Progress       float64
	Status         Status
	ErrorMessage   string
	StartTime      time.Time
	CompletionTime time.Duration
}

// ID returns the task's process-wide unique identifier.
func (t *Task) ID() int64 { return t.id }

// Operation returns the operation the task was created for. Immutable.
func (t *Task) Operation() settings.Operation { return t.operation }

// OutputFile returns the configured output path.
func (t *Task) OutputFile() string { return t.outputFile }

// SetVideoSettings attaches a copy of the video settings. The task owns its
// settings by value and never aliases the caller's bag.
func (t *Task) SetVideoSettings(v settings.VideoSettings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.video = &v
}

// SetAudioSettings attaches a copy of the audio settings.
func (t *Task) SetAudioSettings(a settings.AudioSettings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.audio = &a
}

// Status returns the current lifecycle state.
func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Progress returns the last reported progress in [0, 1].
func (t *Task) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Start moves a Pending task to Running and records the start time. It
// reports false without effect for any other state.
func (t *Task) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusPending {
		return false
	}
	t.status = StatusRunning
	t.progress = 0
	t.startTime = t.now()
	return true
}

// ReportProgress records executor progress, clamped to [0, 1]. Reports
// against a task that is not Running are dropped.
func (t *Task) ReportProgress(p float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusRunning {
		return false
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	t.progress = p
	return true
}

// Complete finishes a Running task: progress becomes 1.0 and the completion
// time records the elapsed duration since start, not the wall-clock end.
func (t *Task) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusRunning {
		return false
	}
	t.status = StatusCompleted
	t.progress = 1
	t.errMsg = ""
	if !t.startTime.IsZero() {
		t.completion = t.now().Sub(t.startTime)
	}
	return true
}

// Fail records an executor-reported failure. Progress keeps its last reported
// value so the display shows how far the job got.
func (t *Task) Fail(message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusRunning {
		return false
	}
	t.status = StatusFailed
	t.errMsg = message
	return true
}

// cancel flips a Running task to Cancelled. Only the registry calls this so
// the kill signal is always issued alongside.
func (t *Task) cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusRunning {
		return false
	}
	t.status = StatusCancelled
	return true
}

// Timing reports elapsed and estimated remaining time for a Running task by
// linear extrapolation of the reported progress. ok is false when the task is
// not Running or progress is still zero, in which case the remaining time is
// indeterminate.
func (t *Task) Timing() (elapsed, remaining time.Duration, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusRunning || t.startTime.IsZero() {
		return 0, 0, false
	}
	elapsed = t.now().Sub(t.startTime)
	if t.progress <= 0 {
		return elapsed, 0, false
	}
	total := time.Duration(float64(elapsed) / t.progress)
	remaining = total - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return elapsed, remaining, true
}

// Snapshot copies the task's state for a reader.
func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := Snapshot{
		ID:             t.id,
		Operation:      t.operation,
		InputFiles:     append([]string(nil), t.inputFiles...),
		OutputFile:     t.outputFile,
		Progress:       t.progress,
		Status:         t.status,
		ErrorMessage:   t.errMsg,
		StartTime:      t.startTime,
		CompletionTime: t.completion,
	}
	if t.video != nil {
		v := *t.video
		snap.VideoSettings = &v
	}
	if t.audio != nil {
		a := *t.audio
		snap.AudioSettings = &a
	}
	return snap
}
