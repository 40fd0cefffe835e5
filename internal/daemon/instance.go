package daemon

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
)

// ErrNotRunning reports that no daemon holds the instance lock.
var ErrNotRunning = errors.New("daemon not running")

// instance is the daemon's exclusive flock on LockPath. While held, the lock
// file records the owning pid; the flock, not the file's presence, says whether
// that pid is live.
type instance struct {
	lock *flock.Flock
}

func claimInstance() (*instance, error) {
	if err := EnsureRuntimeDir(); err != nil {
		return nil, fmt.Errorf("create runtime dir: %w", err)
	}
	lock := flock.New(LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire daemon lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	if err := os.WriteFile(LockPath(), []byte(strconv.Itoa(os.Getpid())+"\n"), 0o600); err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("record daemon pid: %w", err)
	}
	return &instance{lock: lock}, nil
}

// release clears the recorded pid and drops the lock. The file itself stays:
// unlinking a flock'd path lets a second daemon lock a fresh inode.
func (i *instance) release() error {
	var errs []error
	if err := os.Truncate(i.lock.Path(), 0); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, err)
	}
	if err := i.lock.Unlock(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RunningPID returns the pid of the daemon holding the instance lock, or
// ErrNotRunning when the lock is free.
func RunningPID() (int, error) {
	path := LockPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, ErrNotRunning
		}
		return 0, err
	}

	shared := flock.New(path)
	free, err := shared.TryRLock()
	if err != nil {
		return 0, fmt.Errorf("check daemon lock: %w", err)
	}
	if free {
		_ = shared.Unlock()
		return 0, ErrNotRunning
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pid in %s: %w", path, err)
	}
	return pid, nil
}
