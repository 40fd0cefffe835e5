// Package procdir enumerates the running user-facing applications and
// terminates them on request.
package procdir

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// ProcessInfo is a snapshot of one running application. It is rebuilt on every
// enumeration and never mutated afterwards.
type ProcessInfo struct {
	// ID is the stable application key (bundle identifier, executable path).
	// Applications without one get a random ID that changes on every enumeration.
	ID   string
	Name string
	// Icon is an opaque handle the presentation layer may resolve (bundle or executable path).
	Icon string
	// Regular marks a user-facing application as opposed to an agent or helper.
	Regular bool
	// PIDs are the processes that make up the application.
	PIDs []int
}

// Directory is the operating system's view of running applications.
type Directory interface {
	ListRunningApps() ([]ProcessInfo, error)
	// Terminate requests a polite shutdown and returns without waiting for it.
	Terminate(ProcessInfo) error
}

// New returns the directory for the current platform.
func New() Directory {
	return newPlatformDirectory()
}

func fallbackID() string {
	return "anon-" + uuid.NewString()
}

// terminatePIDs sends SIGTERM to every pid. Processes that are already gone are ignored.
func terminatePIDs(pids []int) error {
	var errs []error
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		if err := unix.Kill(pid, unix.SIGTERM); err != nil {
			if errors.Is(err, unix.ESRCH) {
				continue
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type groupKey struct {
	id      string
	regular bool
}

// groupByID merges processes sharing an application ID and classification,
// keeping first-seen order. Background processes are never folded into a
// regular application, so terminating it cannot reach them.
func groupByID(procs []ProcessInfo) []ProcessInfo {
	index := make(map[groupKey]int, len(procs))
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		key := groupKey{id: p.ID, regular: p.Regular}
		if i, ok := index[key]; ok {
			out[i].PIDs = append(out[i].PIDs, p.PIDs...)
			continue
		}
		index[key] = len(out)
		p.PIDs = append([]int(nil), p.PIDs...)
		out = append(out, p)
	}
	return out
}
