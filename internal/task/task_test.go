package task

import (
	"testing"
	"time"

	"framemill/internal/settings"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestRegistry(t *testing.T, clock *fakeClock) *Registry {
	t.Helper()
	return NewRegistry(nil, WithClock(clock.Now))
}

func TestTaskLifecycleTransitions(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.VideoConvert, []string{"in.mov"}, "out.mp4")

	if got := task.Status(); got != StatusPending {
		t.Fatalf("new task status = %v, want %v", got, StatusPending)
	}
	if task.ReportProgress(0.5) {
		t.Fatal("progress report against a pending task should be dropped")
	}
	if task.Complete() {
		t.Fatal("completing a pending task should be rejected")
	}

	if !task.Start() {
		t.Fatal("start from pending should succeed")
	}
	if task.Start() {
		t.Fatal("second start should be rejected")
	}
	if got := task.Status(); got != StatusRunning {
		t.Fatalf("status after start = %v, want %v", got, StatusRunning)
	}

	if !task.ReportProgress(0.4) {
		t.Fatal("progress report against a running task should succeed")
	}
	if !task.Complete() {
		t.Fatal("complete from running should succeed")
	}
	if got := task.Status(); got != StatusCompleted {
		t.Fatalf("status after complete = %v, want %v", got, StatusCompleted)
	}
	if got := task.Progress(); got != 1 {
		t.Fatalf("progress after complete = %v, want 1", got)
	}
	if task.ReportProgress(0.2) {
		t.Fatal("progress report after completion should be dropped")
	}
}

func TestTaskFailKeepsProgress(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.AudioConvert, []string{"in.wav"}, "out.mp3")

	if !task.Start() {
		t.Fatal("start failed")
	}
	task.ReportProgress(0.65)
	if !task.Fail("encoder exited with code 1") {
		t.Fatal("fail from running should succeed")
	}

	snap := task.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %v, want %v", snap.Status, StatusFailed)
	}
	if snap.Progress != 0.65 {
		t.Fatalf("progress = %v, want 0.65 preserved", snap.Progress)
	}
	if snap.ErrorMessage != "encoder exited with code 1" {
		t.Fatalf("error message = %q", snap.ErrorMessage)
	}
}

func TestTaskProgressClamped(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.VideoCompress, nil, "out.mp4")
	task.Start()

	task.ReportProgress(1.7)
	if got := task.Progress(); got != 1 {
		t.Fatalf("progress = %v, want clamp to 1", got)
	}
	task.ReportProgress(-0.3)
	if got := task.Progress(); got != 0 {
		t.Fatalf("progress = %v, want clamp to 0", got)
	}
}

func TestTaskCompletionRecordsElapsed(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.VideoConvert, nil, "out.mp4")

	task.Start()
	clock.Advance(90 * time.Second)
	task.Complete()

	snap := task.Snapshot()
	if snap.CompletionTime != 90*time.Second {
		t.Fatalf("completion time = %v, want 90s elapsed", snap.CompletionTime)
	}
}

func TestTaskTimingLinearEstimate(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.VideoConvert, nil, "out.mp4")
	task.Start()

	if _, _, ok := task.Timing(); ok {
		t.Fatal("timing should be indeterminate before any progress")
	}

	clock.Advance(30 * time.Second)
	task.ReportProgress(0.25)

	elapsed, remaining, ok := task.Timing()
	if !ok {
		t.Fatal("timing should be available once progress is reported")
	}
	if elapsed != 30*time.Second {
		t.Fatalf("elapsed = %v, want 30s", elapsed)
	}
	if remaining != 90*time.Second {
		t.Fatalf("remaining = %v, want 90s for 25%% after 30s", remaining)
	}
}

func TestTaskTimingRemainingNeverNegative(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.VideoConvert, nil, "out.mp4")
	task.Start()

	clock.Advance(10 * time.Second)
	task.ReportProgress(1.0)
	clock.Advance(5 * time.Second)

	_, remaining, ok := task.Timing()
	if !ok {
		t.Fatal("timing should be available")
	}
	if remaining != 0 {
		t.Fatalf("remaining = %v, want clamp to 0", remaining)
	}
}

func TestTaskSnapshotCopiesSettings(t *testing.T) {
	clock := newFakeClock()
	reg := newTestRegistry(t, clock)
	task := reg.Create(settings.VideoConvert, []string{"a.mov"}, "out.mp4")
	task.SetVideoSettings(settings.DefaultVideoSettings())

	snap := task.Snapshot()
	if snap.VideoSettings == nil {
		t.Fatal("snapshot missing video settings")
	}
	snap.VideoSettings.Codec = "libx265"
	snap.InputFiles[0] = "mutated"

	again := task.Snapshot()
	if again.VideoSettings.Codec != "auto" {
		t.Fatalf("task settings mutated through snapshot: codec = %q", again.VideoSettings.Codec)
	}
	if again.InputFiles[0] != "a.mov" {
		t.Fatalf("task input files mutated through snapshot: %q", again.InputFiles[0])
	}
}
