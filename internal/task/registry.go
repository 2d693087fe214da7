package task

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"framemill/internal/logging"
	"framemill/internal/settings"
)

// Terminator kills encoder processes by name. Implementations are
// best-effort and fire-and-forget; the registry never inspects the outcome.
type Terminator interface {
	Terminate(processName string)
}

// DefaultEncoderProcessName is the process name handed to the terminator
// when a task is cancelled.
const DefaultEncoderProcessName = "ffmpeg"

// Registry creates tasks and owns the shared monotonic id counter. Ids start
// at 1, never repeat, and are safe to allocate from concurrent goroutines.
type Registry struct {
	counter     atomic.Int64
	terminator  Terminator
	processName string
	now         func() time.Time
	logger      *slog.Logger

	mu    sync.Mutex
	tasks map[int64]*Task
	order []int64
}

// Option adjusts registry construction.
type Option func(*Registry)

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithEncoderProcessName overrides the process name passed to the terminator.
func WithEncoderProcessName(name string) Option {
	return func(r *Registry) { r.processName = name }
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry builds an empty registry. terminator may be nil when
// cancellation will never be requested (e.g. dry runs).
func NewRegistry(terminator Terminator, opts ...Option) *Registry {
	r := &Registry{
		terminator:  terminator,
		processName: DefaultEncoderProcessName,
		now:         time.Now,
		logger:      logging.NewNop(),
		tasks:       make(map[int64]*Task),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create registers a new Pending task for the operation. Input files are
// copied; settings are attached separately via the task's setters.
func (r *Registry) Create(op settings.Operation, inputFiles []string, outputFile string) *Task {
	t := &Task{
		id:         r.counter.Add(1),
		operation:  op,
		inputFiles: append([]string(nil), inputFiles...),
		outputFile: outputFile,
		status:     StatusPending,
		now:        r.now,
	}
	r.mu.Lock()
	r.tasks[t.id] = t
	r.order = append(r.order, t.id)
	r.mu.Unlock()
	r.logger.Debug("task created", "task_id", t.id, "operation", op.String(), "output", outputFile)
	return t
}

// Get returns the task with the given id.
func (r *Registry) Get(id int64) (*Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	return t, ok
}

// Tasks returns the live tasks in creation order.
func (r *Registry) Tasks() []*Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Task, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Snapshots returns point-in-time copies of every live task in creation
// order, for display code.
func (r *Registry) Snapshots() []Snapshot {
	tasks := r.Tasks()
	out := make([]Snapshot, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Snapshot())
	}
	return out
}

// Cancel flips a Running task to Cancelled and asynchronously asks the
// terminator to kill matching encoder processes. The status change is
// immediate and never rolled back; cancelling a task in any other state is a
// no-op and reports false.
func (r *Registry) Cancel(id int64) bool {
	t, ok := r.Get(id)
	if !ok {
		return false
	}
	if !t.cancel() {
		return false
	}
	r.logger.Info("task cancelled", "task_id", id, "process", r.processName)
	if r.terminator != nil {
		go r.terminator.Terminate(r.processName)
	}
	return true
}

// Remove discards a task that is not Running. Pending tasks are simply
// dropped with no status transition; a Running task must be cancelled first.
func (r *Registry) Remove(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("remove task: no task with id %d", id)
	}
	if t.Status() == StatusRunning {
		return fmt.Errorf("remove task %d: task is running", id)
	}
	delete(r.tasks, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
