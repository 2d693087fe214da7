package prockill

import (
	"os/exec"
	"runtime"

	"framemill/internal/task"
)

// Killer terminates processes by name using the platform's native tool:
// taskkill on Windows, pkill elsewhere.
type Killer struct{}

var _ task.Terminator = (*Killer)(nil)

// New returns a Killer.
func New() *Killer {
	return &Killer{}
}

// Terminate kills every process matching name. Output and exit status are
// ignored on purpose; cancellation must not block or fail on a kill that
// finds nothing.
func (k *Killer) Terminate(name string) {
	if runtime.GOOS == "windows" {
		_ = exec.Command("taskkill", "/F", "/IM", name+".exe").Run()
		return
	}
	_ = exec.Command("pkill", "-f", name).Run()
}
